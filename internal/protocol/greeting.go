package protocol

import "encoding/xml"

// Greeting is the server's self-description frame, received once immediately
// after connecting and again in reply to <hello>.
type Greeting struct {
	XMLName     xml.Name    `xml:"epp"`
	ServiceID   string      `xml:"greeting>svID"`
	ServiceDate string      `xml:"greeting>svDate"`
	ServiceMenu ServiceMenu `xml:"greeting>svcMenu"`
	DCP         DCP         `xml:"greeting>dcp"`
}

// ServiceMenu lists the protocol versions, languages, object namespaces, and
// extension namespaces the registry supports.
type ServiceMenu struct {
	Versions   []string `xml:"version"`
	Languages  []string `xml:"lang"`
	Objects    []string `xml:"objURI"`
	Extensions []string `xml:"svcExtension>extURI"`
}

// DCP is the registry's data collection policy. The policy values are empty
// elements whose presence is the signal, so each is modelled as an optional
// empty struct.
type DCP struct {
	Access     DCPAccess      `xml:"access"`
	Statements []DCPStatement `xml:"statement"`
}

// DCPAccess describes what access the registry grants to collected data.
type DCPAccess struct {
	All              *struct{} `xml:"all"`
	None             *struct{} `xml:"none"`
	Null             *struct{} `xml:"null"`
	Personal         *struct{} `xml:"personal"`
	PersonalAndOther *struct{} `xml:"personalAndOther"`
	Other            *struct{} `xml:"other"`
}

// DCPStatement is one purpose/recipient/retention triple.
type DCPStatement struct {
	Purpose   DCPPurpose   `xml:"purpose"`
	Recipient DCPRecipient `xml:"recipient"`
	Retention DCPRetention `xml:"retention"`
}

// DCPPurpose describes why data is collected.
type DCPPurpose struct {
	Admin   *struct{} `xml:"admin"`
	Contact *struct{} `xml:"contact"`
	Prov    *struct{} `xml:"prov"`
	Other   *struct{} `xml:"other"`
}

// DCPRecipient describes who receives collected data.
type DCPRecipient struct {
	Other     *struct{} `xml:"other"`
	Ours      *struct{} `xml:"ours"`
	Public    *struct{} `xml:"public"`
	Same      *struct{} `xml:"same"`
	Unrelated *struct{} `xml:"unrelated"`
}

// DCPRetention describes how long collected data is kept.
type DCPRetention struct {
	Business   *struct{} `xml:"business"`
	Indefinite *struct{} `xml:"indefinite"`
	Legal      *struct{} `xml:"legal"`
	None       *struct{} `xml:"none"`
	Stated     *struct{} `xml:"stated"`
}

// ParseGreeting deserializes a greeting document.
func ParseGreeting(doc string) (*Greeting, error) {
	var g Greeting
	if err := xml.Unmarshal([]byte(doc), &g); err != nil {
		return nil, &CodecError{Op: "deserialize", Err: err}
	}
	return &g, nil
}

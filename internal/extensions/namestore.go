package extensions

import "encoding/xml"

// NameStore routes a command to a Verisign registry sub-product (e.g.
// "dotCOM", "dotNET", "dotCC").
type NameStore struct {
	XMLName    xml.Name `xml:"namestoreExt:namestoreExt"`
	Xmlns      string   `xml:"xmlns:namestoreExt,attr"`
	SubProduct string   `xml:"namestoreExt:subProduct"`
}

func NewNameStore(subProduct string) *NameStore {
	return &NameStore{Xmlns: NameStoreNamespace, SubProduct: subProduct}
}

func (*NameStore) ExtensionName() string { return "namestoreExt:namestoreExt" }

// NameStoreData is the <extension> payload echoed back on NameStore-routed
// responses.
type NameStoreData struct {
	NamestoreExt struct {
		SubProduct string `xml:"subProduct"`
	} `xml:"namestoreExt"`
}

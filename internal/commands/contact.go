package commands

import "encoding/xml"

// ContactAuthInfo is the contact transfer authorization password.
type ContactAuthInfo struct {
	Password string `xml:"contact:pw"`
}

// ContactPostalInfo is a postal address block, typed "int"
// (internationalized, ASCII) or "loc" (localized).
type ContactPostalInfo struct {
	Type    string         `xml:"type,attr"`
	Name    string         `xml:"contact:name"`
	Org     string         `xml:"contact:org,omitempty"`
	Address ContactAddress `xml:"contact:addr"`
}

// ContactAddress is the street/city/region/postcode/country block.
type ContactAddress struct {
	Streets    []string `xml:"contact:street"`
	City       string   `xml:"contact:city"`
	Province   string   `xml:"contact:sp,omitempty"`
	PostalCode string   `xml:"contact:pc,omitempty"`
	Country    string   `xml:"contact:cc"`
}

// ContactPhone is a voice or fax number in E.164 notation with an optional
// extension.
type ContactPhone struct {
	Extension string `xml:"x,attr,omitempty"`
	Number    string `xml:",chardata"`
}

// ---------------------------------------------------------------------------
// Check
// ---------------------------------------------------------------------------

// ContactCheck asks whether contact IDs are available.
type ContactCheck struct {
	XMLName xml.Name         `xml:"check"`
	Contact contactCheckBody `xml:"contact:check"`
}

type contactCheckBody struct {
	Xmlns string   `xml:"xmlns:contact,attr"`
	IDs   []string `xml:"contact:id"`
}

func NewContactCheck(ids []string) *ContactCheck {
	return &ContactCheck{Contact: contactCheckBody{Xmlns: ContactNamespace, IDs: ids}}
}

func (*ContactCheck) Action() string { return "check" }

// ContactCheckData is the <resData> payload of a contact <check> response.
type ContactCheckData struct {
	ChkData struct {
		Items []ContactCheckItem `xml:"cd"`
	} `xml:"chkData"`
}

type ContactCheckItem struct {
	ID     ContactCheckID `xml:"id"`
	Reason string         `xml:"reason"`
}

type ContactCheckID struct {
	ID        string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

// ContactCreate provisions a contact object.
type ContactCreate struct {
	XMLName xml.Name          `xml:"create"`
	Contact contactCreateBody `xml:"contact:create"`
}

type contactCreateBody struct {
	Xmlns      string              `xml:"xmlns:contact,attr"`
	ID         string              `xml:"contact:id"`
	PostalInfo []ContactPostalInfo `xml:"contact:postalInfo"`
	Voice      *ContactPhone       `xml:"contact:voice"`
	Fax        *ContactPhone       `xml:"contact:fax"`
	Email      string              `xml:"contact:email"`
	AuthInfo   ContactAuthInfo     `xml:"contact:authInfo"`
}

// ContactCreateParams collects the pieces of a contact <create>.
type ContactCreateParams struct {
	PostalInfo []ContactPostalInfo
	Voice      *ContactPhone
	Fax        *ContactPhone
	Email      string
	AuthPw     string
}

func NewContactCreate(id string, p ContactCreateParams) *ContactCreate {
	return &ContactCreate{Contact: contactCreateBody{
		Xmlns:      ContactNamespace,
		ID:         id,
		PostalInfo: p.PostalInfo,
		Voice:      p.Voice,
		Fax:        p.Fax,
		Email:      p.Email,
		AuthInfo:   ContactAuthInfo{Password: p.AuthPw},
	}}
}

func (*ContactCreate) Action() string { return "create" }

// ContactCreateData is the <resData> payload of a contact <create> response.
type ContactCreateData struct {
	CreData struct {
		ID         string `xml:"id"`
		CreateDate string `xml:"crDate"`
	} `xml:"creData"`
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

// ContactDelete removes a contact object. No <resData> on success.
type ContactDelete struct {
	XMLName xml.Name          `xml:"delete"`
	Contact contactDeleteBody `xml:"contact:delete"`
}

type contactDeleteBody struct {
	Xmlns string `xml:"xmlns:contact,attr"`
	ID    string `xml:"contact:id"`
}

func NewContactDelete(id string) *ContactDelete {
	return &ContactDelete{Contact: contactDeleteBody{Xmlns: ContactNamespace, ID: id}}
}

func (*ContactDelete) Action() string { return "delete" }

// ---------------------------------------------------------------------------
// Info
// ---------------------------------------------------------------------------

// ContactInfo retrieves a contact object's state.
type ContactInfo struct {
	XMLName xml.Name        `xml:"info"`
	Contact contactInfoBody `xml:"contact:info"`
}

type contactInfoBody struct {
	Xmlns    string           `xml:"xmlns:contact,attr"`
	ID       string           `xml:"contact:id"`
	AuthInfo *ContactAuthInfo `xml:"contact:authInfo"`
}

func NewContactInfo(id string, authPw string) *ContactInfo {
	body := contactInfoBody{Xmlns: ContactNamespace, ID: id}
	if authPw != "" {
		body.AuthInfo = &ContactAuthInfo{Password: authPw}
	}
	return &ContactInfo{Contact: body}
}

func (*ContactInfo) Action() string { return "info" }

// ContactInfoData is the <resData> payload of a contact <info> response.
// Postal blocks come back with bare local names, so the request-side structs
// (which carry prefixed tags) do not apply here.
type ContactInfoData struct {
	InfData struct {
		ID         string         `xml:"id"`
		ROID       string         `xml:"roid"`
		Statuses   []ObjectStatus `xml:"status"`
		PostalInfo []struct {
			Type    string `xml:"type,attr"`
			Name    string `xml:"name"`
			Org     string `xml:"org"`
			Address struct {
				Streets    []string `xml:"street"`
				City       string   `xml:"city"`
				Province   string   `xml:"sp"`
				PostalCode string   `xml:"pc"`
				Country    string   `xml:"cc"`
			} `xml:"addr"`
		} `xml:"postalInfo"`
		Voice      *ContactPhone `xml:"voice"`
		Fax        *ContactPhone `xml:"fax"`
		Email      string        `xml:"email"`
		ClID       string        `xml:"clID"`
		CrID       string        `xml:"crID"`
		CreateDate string        `xml:"crDate"`
		UpID       string        `xml:"upID"`
		UpdateDate string        `xml:"upDate"`
		AuthInfo   *struct {
			Password string `xml:"pw"`
		} `xml:"authInfo"`
	} `xml:"infData"`
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

// ContactUpdate adds/removes statuses and changes postal, phone, email, or
// authInfo data.
type ContactUpdate struct {
	XMLName xml.Name          `xml:"update"`
	Contact contactUpdateBody `xml:"contact:update"`
}

type contactUpdateBody struct {
	Xmlns  string            `xml:"xmlns:contact,attr"`
	ID     string            `xml:"contact:id"`
	Add    *ContactAddRemove `xml:"contact:add"`
	Remove *ContactAddRemove `xml:"contact:rem"`
	Change *ContactChange    `xml:"contact:chg"`
}

// ContactAddRemove is the payload of the <add> and <rem> update blocks.
type ContactAddRemove struct {
	Statuses []ContactStatus `xml:"contact:status"`
}

// ContactStatus sets a status flag on the contact.
type ContactStatus struct {
	Status string `xml:"s,attr"`
}

// ContactChange is the <chg> update block.
type ContactChange struct {
	PostalInfo []ContactPostalInfo `xml:"contact:postalInfo"`
	Voice      *ContactPhone       `xml:"contact:voice"`
	Fax        *ContactPhone       `xml:"contact:fax"`
	Email      string              `xml:"contact:email,omitempty"`
	AuthInfo   *ContactAuthInfo    `xml:"contact:authInfo"`
}

func NewContactUpdate(id string, add, remove *ContactAddRemove, change *ContactChange) *ContactUpdate {
	return &ContactUpdate{Contact: contactUpdateBody{
		Xmlns:  ContactNamespace,
		ID:     id,
		Add:    add,
		Remove: remove,
		Change: change,
	}}
}

func (*ContactUpdate) Action() string { return "update" }

package commands

import "encoding/xml"

// ---------------------------------------------------------------------------
// Shared domain elements
// ---------------------------------------------------------------------------

// Period is a registration period in years or months.
type Period struct {
	Unit  string `xml:"unit,attr"`
	Value int    `xml:",chardata"`
}

// Years builds a period expressed in years, the common case.
func Years(n int) *Period { return &Period{Unit: "y", Value: n} }

// DomainContact associates a contact object with a domain in a given role
// (admin, tech, billing).
type DomainContact struct {
	Type string `xml:"type,attr"`
	ID   string `xml:",chardata"`
}

// DomainAuthInfo is the transfer authorization password.
type DomainAuthInfo struct {
	Password string `xml:"domain:pw"`
}

// DomainNameservers lists delegated hosts by host object reference.
type DomainNameservers struct {
	HostObjs []string `xml:"domain:hostObj"`
}

// ---------------------------------------------------------------------------
// Check
// ---------------------------------------------------------------------------

// DomainCheck asks whether one or more names are available for registration.
type DomainCheck struct {
	XMLName xml.Name        `xml:"check"`
	Domain  domainCheckBody `xml:"domain:check"`
}

type domainCheckBody struct {
	Xmlns string   `xml:"xmlns:domain,attr"`
	Names []string `xml:"domain:name"`
}

func NewDomainCheck(names []string) *DomainCheck {
	return &DomainCheck{Domain: domainCheckBody{Xmlns: DomainNamespace, Names: names}}
}

func (*DomainCheck) Action() string { return "check" }

// DomainCheckData is the <resData> payload of a domain <check> response.
type DomainCheckData struct {
	ChkData struct {
		Items []DomainCheckItem `xml:"cd"`
	} `xml:"chkData"`
}

// DomainCheckItem reports one name's availability, with an optional reason
// when taken.
type DomainCheckItem struct {
	Name   DomainCheckName `xml:"name"`
	Reason string          `xml:"reason"`
}

type DomainCheckName struct {
	Name      string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

// DomainCreate registers a new domain.
type DomainCreate struct {
	XMLName xml.Name         `xml:"create"`
	Domain  domainCreateBody `xml:"domain:create"`
}

// Element order is fixed by the domain-1.0 schema: name, period, ns,
// registrant, contact, authInfo.
type domainCreateBody struct {
	Xmlns       string             `xml:"xmlns:domain,attr"`
	Name        string             `xml:"domain:name"`
	Period      *Period            `xml:"domain:period"`
	Nameservers *DomainNameservers `xml:"domain:ns"`
	Registrant  string             `xml:"domain:registrant,omitempty"`
	Contacts    []DomainContact    `xml:"domain:contact"`
	AuthInfo    DomainAuthInfo     `xml:"domain:authInfo"`
}

// DomainCreateParams collects the optional pieces of a domain <create>.
type DomainCreateParams struct {
	Period      *Period
	Nameservers []string
	Registrant  string
	Contacts    []DomainContact
	AuthPw      string
}

func NewDomainCreate(name string, p DomainCreateParams) *DomainCreate {
	body := domainCreateBody{
		Xmlns:      DomainNamespace,
		Name:       name,
		Period:     p.Period,
		Registrant: p.Registrant,
		Contacts:   p.Contacts,
		AuthInfo:   DomainAuthInfo{Password: p.AuthPw},
	}
	if len(p.Nameservers) > 0 {
		body.Nameservers = &DomainNameservers{HostObjs: p.Nameservers}
	}
	return &DomainCreate{Domain: body}
}

func (*DomainCreate) Action() string { return "create" }

// DomainCreateData is the <resData> payload of a domain <create> response.
type DomainCreateData struct {
	CreData struct {
		Name       string `xml:"name"`
		CreateDate string `xml:"crDate"`
		ExpiryDate string `xml:"exDate"`
	} `xml:"creData"`
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

// DomainDelete removes a domain. No <resData> on success.
type DomainDelete struct {
	XMLName xml.Name         `xml:"delete"`
	Domain  domainDeleteBody `xml:"domain:delete"`
}

type domainDeleteBody struct {
	Xmlns string `xml:"xmlns:domain,attr"`
	Name  string `xml:"domain:name"`
}

func NewDomainDelete(name string) *DomainDelete {
	return &DomainDelete{Domain: domainDeleteBody{Xmlns: DomainNamespace, Name: name}}
}

func (*DomainDelete) Action() string { return "delete" }

// ---------------------------------------------------------------------------
// Info
// ---------------------------------------------------------------------------

// DomainInfo retrieves a domain's full state. The hosts attribute narrows
// which delegated hosts are returned ("all", "del", "sub", "none").
type DomainInfo struct {
	XMLName xml.Name       `xml:"info"`
	Domain  domainInfoBody `xml:"domain:info"`
}

type domainInfoBody struct {
	Xmlns    string          `xml:"xmlns:domain,attr"`
	Name     domainInfoName  `xml:"domain:name"`
	AuthInfo *DomainAuthInfo `xml:"domain:authInfo"`
}

type domainInfoName struct {
	Hosts string `xml:"hosts,attr,omitempty"`
	Name  string `xml:",chardata"`
}

func NewDomainInfo(name string, authPw string) *DomainInfo {
	body := domainInfoBody{
		Xmlns: DomainNamespace,
		Name:  domainInfoName{Hosts: "all", Name: name},
	}
	if authPw != "" {
		body.AuthInfo = &DomainAuthInfo{Password: authPw}
	}
	return &DomainInfo{Domain: body}
}

func (*DomainInfo) Action() string { return "info" }

// DomainInfoData is the <resData> payload of a domain <info> response.
type DomainInfoData struct {
	InfData struct {
		Name         string          `xml:"name"`
		ROID         string          `xml:"roid"`
		Statuses     []ObjectStatus  `xml:"status"`
		Registrant   string          `xml:"registrant"`
		Contacts     []DomainContact `xml:"contact"`
		Nameservers  []string        `xml:"ns>hostObj"`
		Hosts        []string        `xml:"host"`
		ClID         string          `xml:"clID"`
		CrID         string          `xml:"crID"`
		CreateDate   string          `xml:"crDate"`
		UpID         string          `xml:"upID"`
		UpdateDate   string          `xml:"upDate"`
		ExpiryDate   string          `xml:"exDate"`
		TransferDate string          `xml:"trDate"`
		AuthInfo     *struct {
			Password string `xml:"pw"`
		} `xml:"authInfo"`
	} `xml:"infData"`
}

// ---------------------------------------------------------------------------
// Renew
// ---------------------------------------------------------------------------

// DomainRenew extends a registration from its current expiry date.
type DomainRenew struct {
	XMLName xml.Name        `xml:"renew"`
	Domain  domainRenewBody `xml:"domain:renew"`
}

type domainRenewBody struct {
	Xmlns         string  `xml:"xmlns:domain,attr"`
	Name          string  `xml:"domain:name"`
	CurrentExpiry string  `xml:"domain:curExpDate"`
	Period        *Period `xml:"domain:period"`
}

func NewDomainRenew(name, currentExpiry string, period *Period) *DomainRenew {
	return &DomainRenew{Domain: domainRenewBody{
		Xmlns:         DomainNamespace,
		Name:          name,
		CurrentExpiry: currentExpiry,
		Period:        period,
	}}
}

func (*DomainRenew) Action() string { return "renew" }

// DomainRenewData is the <resData> payload of a domain <renew> response.
type DomainRenewData struct {
	RenData struct {
		Name       string `xml:"name"`
		ExpiryDate string `xml:"exDate"`
	} `xml:"renData"`
}

// ---------------------------------------------------------------------------
// Transfer
// ---------------------------------------------------------------------------

// Transfer operation values for the op attribute.
const (
	TransferRequest = "request"
	TransferQuery   = "query"
	TransferApprove = "approve"
	TransferReject  = "reject"
	TransferCancel  = "cancel"
)

// DomainTransfer manages a transfer between sponsoring registrars. The Op
// field selects which of the five transfer operations is performed.
type DomainTransfer struct {
	XMLName xml.Name           `xml:"transfer"`
	Op      string             `xml:"op,attr"`
	Domain  domainTransferBody `xml:"domain:transfer"`
}

type domainTransferBody struct {
	Xmlns    string          `xml:"xmlns:domain,attr"`
	Name     string          `xml:"domain:name"`
	Period   *Period         `xml:"domain:period"`
	AuthInfo *DomainAuthInfo `xml:"domain:authInfo"`
}

func NewDomainTransfer(op, name string, period *Period, authPw string) *DomainTransfer {
	body := domainTransferBody{Xmlns: DomainNamespace, Name: name, Period: period}
	if authPw != "" {
		body.AuthInfo = &DomainAuthInfo{Password: authPw}
	}
	return &DomainTransfer{Op: op, Domain: body}
}

func (*DomainTransfer) Action() string { return "transfer" }

// DomainTransferData is the <resData> payload of a domain <transfer>
// response.
type DomainTransferData struct {
	TrnData struct {
		Name           string `xml:"name"`
		TransferStatus string `xml:"trStatus"`
		RequestingID   string `xml:"reID"`
		RequestDate    string `xml:"reDate"`
		ActingID       string `xml:"acID"`
		ActingDate     string `xml:"acDate"`
		ExpiryDate     string `xml:"exDate"`
	} `xml:"trnData"`
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

// DomainUpdate adds/removes delegation, contacts, and statuses, and changes
// the registrant or authInfo.
type DomainUpdate struct {
	XMLName xml.Name         `xml:"update"`
	Domain  domainUpdateBody `xml:"domain:update"`
}

type domainUpdateBody struct {
	Xmlns  string           `xml:"xmlns:domain,attr"`
	Name   string           `xml:"domain:name"`
	Add    *DomainAddRemove `xml:"domain:add"`
	Remove *DomainAddRemove `xml:"domain:rem"`
	Change *DomainChange    `xml:"domain:chg"`
}

// DomainAddRemove is the payload of the <add> and <rem> update blocks.
type DomainAddRemove struct {
	Nameservers *DomainNameservers `xml:"domain:ns"`
	Contacts    []DomainContact    `xml:"domain:contact"`
	Statuses    []DomainStatus     `xml:"domain:status"`
}

// DomainStatus sets a status flag (clientHold, clientTransferProhibited, ...).
type DomainStatus struct {
	Status string `xml:"s,attr"`
}

// DomainChange is the <chg> update block.
type DomainChange struct {
	Registrant string          `xml:"domain:registrant,omitempty"`
	AuthInfo   *DomainAuthInfo `xml:"domain:authInfo"`
}

func NewDomainUpdate(name string, add, remove *DomainAddRemove, change *DomainChange) *DomainUpdate {
	return &DomainUpdate{Domain: domainUpdateBody{
		Xmlns:  DomainNamespace,
		Name:   name,
		Add:    add,
		Remove: remove,
		Change: change,
	}}
}

func (*DomainUpdate) Action() string { return "update" }

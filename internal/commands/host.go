package commands

import "encoding/xml"

// HostAddr is a glue address, tagged v4 or v6.
type HostAddr struct {
	IP      string `xml:"ip,attr,omitempty"`
	Address string `xml:",chardata"`
}

// V4 and V6 build tagged glue addresses.
func V4(addr string) HostAddr { return HostAddr{IP: "v4", Address: addr} }
func V6(addr string) HostAddr { return HostAddr{IP: "v6", Address: addr} }

// ---------------------------------------------------------------------------
// Check
// ---------------------------------------------------------------------------

// HostCheck asks whether host names are available.
type HostCheck struct {
	XMLName xml.Name      `xml:"check"`
	Host    hostCheckBody `xml:"host:check"`
}

type hostCheckBody struct {
	Xmlns string   `xml:"xmlns:host,attr"`
	Names []string `xml:"host:name"`
}

func NewHostCheck(names []string) *HostCheck {
	return &HostCheck{Host: hostCheckBody{Xmlns: HostNamespace, Names: names}}
}

func (*HostCheck) Action() string { return "check" }

// HostCheckData is the <resData> payload of a host <check> response.
type HostCheckData struct {
	ChkData struct {
		Items []HostCheckItem `xml:"cd"`
	} `xml:"chkData"`
}

type HostCheckItem struct {
	Name   HostCheckName `xml:"name"`
	Reason string        `xml:"reason"`
}

type HostCheckName struct {
	Name      string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

// HostCreate provisions a host object, with glue addresses when the host is
// subordinate to a registered domain.
type HostCreate struct {
	XMLName xml.Name       `xml:"create"`
	Host    hostCreateBody `xml:"host:create"`
}

type hostCreateBody struct {
	Xmlns     string     `xml:"xmlns:host,attr"`
	Name      string     `xml:"host:name"`
	Addresses []HostAddr `xml:"host:addr"`
}

func NewHostCreate(name string, addrs []HostAddr) *HostCreate {
	return &HostCreate{Host: hostCreateBody{Xmlns: HostNamespace, Name: name, Addresses: addrs}}
}

func (*HostCreate) Action() string { return "create" }

// HostCreateData is the <resData> payload of a host <create> response.
type HostCreateData struct {
	CreData struct {
		Name       string `xml:"name"`
		CreateDate string `xml:"crDate"`
	} `xml:"creData"`
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

// HostDelete removes a host object. No <resData> on success.
type HostDelete struct {
	XMLName xml.Name       `xml:"delete"`
	Host    hostDeleteBody `xml:"host:delete"`
}

type hostDeleteBody struct {
	Xmlns string `xml:"xmlns:host,attr"`
	Name  string `xml:"host:name"`
}

func NewHostDelete(name string) *HostDelete {
	return &HostDelete{Host: hostDeleteBody{Xmlns: HostNamespace, Name: name}}
}

func (*HostDelete) Action() string { return "delete" }

// ---------------------------------------------------------------------------
// Info
// ---------------------------------------------------------------------------

// HostInfo retrieves a host object's state.
type HostInfo struct {
	XMLName xml.Name     `xml:"info"`
	Host    hostInfoBody `xml:"host:info"`
}

type hostInfoBody struct {
	Xmlns string `xml:"xmlns:host,attr"`
	Name  string `xml:"host:name"`
}

func NewHostInfo(name string) *HostInfo {
	return &HostInfo{Host: hostInfoBody{Xmlns: HostNamespace, Name: name}}
}

func (*HostInfo) Action() string { return "info" }

// HostInfoData is the <resData> payload of a host <info> response.
type HostInfoData struct {
	InfData struct {
		Name         string         `xml:"name"`
		ROID         string         `xml:"roid"`
		Statuses     []ObjectStatus `xml:"status"`
		Addresses    []HostAddr     `xml:"addr"`
		ClID         string         `xml:"clID"`
		CrID         string         `xml:"crID"`
		CreateDate   string         `xml:"crDate"`
		UpID         string         `xml:"upID"`
		UpdateDate   string         `xml:"upDate"`
		TransferDate string         `xml:"trDate"`
	} `xml:"infData"`
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

// HostUpdate adds/removes addresses and statuses, and renames the host.
type HostUpdate struct {
	XMLName xml.Name       `xml:"update"`
	Host    hostUpdateBody `xml:"host:update"`
}

type hostUpdateBody struct {
	Xmlns  string         `xml:"xmlns:host,attr"`
	Name   string         `xml:"host:name"`
	Add    *HostAddRemove `xml:"host:add"`
	Remove *HostAddRemove `xml:"host:rem"`
	Change *HostChange    `xml:"host:chg"`
}

// HostAddRemove is the payload of the <add> and <rem> update blocks.
type HostAddRemove struct {
	Addresses []HostAddr   `xml:"host:addr"`
	Statuses  []HostStatus `xml:"host:status"`
}

// HostStatus sets a status flag on the host.
type HostStatus struct {
	Status string `xml:"s,attr"`
}

// HostChange renames the host object.
type HostChange struct {
	Name string `xml:"host:name"`
}

func NewHostUpdate(name string, add, remove *HostAddRemove, change *HostChange) *HostUpdate {
	return &HostUpdate{Host: hostUpdateBody{
		Xmlns:  HostNamespace,
		Name:   name,
		Add:    add,
		Remove: remove,
		Change: change,
	}}
}

func (*HostUpdate) Action() string { return "update" }

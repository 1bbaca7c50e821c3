package extensions

import "encoding/xml"

// RgpRestoreRequest asks the registry to restore a domain from the
// redemption grace period. It extends a domain <update> command whose
// add/rem/chg blocks are all empty.
type RgpRestoreRequest struct {
	XMLName xml.Name   `xml:"rgp:update"`
	Xmlns   string     `xml:"xmlns:rgp,attr"`
	Restore rgpRestore `xml:"rgp:restore"`
}

type rgpRestore struct {
	Op string `xml:"op,attr"`
}

func NewRgpRestoreRequest() *RgpRestoreRequest {
	return &RgpRestoreRequest{Xmlns: RgpNamespace, Restore: rgpRestore{Op: "request"}}
}

func (*RgpRestoreRequest) ExtensionName() string { return "rgp:update" }

// RgpUpdateData is the <extension> payload the registry returns for
// RGP-extended updates: the domain's current grace-period statuses.
type RgpUpdateData struct {
	UpData struct {
		Statuses []RgpStatus `xml:"rgpStatus"`
	} `xml:"upData"`
}

// RgpStatus is one redemption status flag (pendingRestore, redemptionPeriod,
// ...).
type RgpStatus struct {
	Status string `xml:"s,attr"`
}

package extensions

import (
	"encoding/xml"
	"fmt"
	"time"
)

// ConsolidateSync aligns a domain's expiry to a fixed month and day. It
// extends a domain <update> command.
type ConsolidateSync struct {
	XMLName     xml.Name `xml:"sync:update"`
	Xmlns       string   `xml:"xmlns:sync,attr"`
	ExpMonthDay string   `xml:"sync:expMonthDay"`
}

// NewConsolidateSync builds a sync extension for the given target month and
// day, in the registry's "--MM-DD" gMonthDay notation.
func NewConsolidateSync(month time.Month, day int) *ConsolidateSync {
	return &ConsolidateSync{
		Xmlns:       ConsolidateNamespace,
		ExpMonthDay: fmt.Sprintf("--%02d-%02d", int(month), day),
	}
}

func (*ConsolidateSync) ExtensionName() string { return "sync:update" }

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eppwiresh/eppwire/internal/protocol"
)

func TestHostCreateSerialize(t *testing.T) {
	cmd := NewHostCreate("ns1.eppdev.com", []HostAddr{V4("203.0.113.44"), V6("2001:db8::1")})
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:host")
	require.NoError(t, err)

	assert.Contains(t, doc, `<host:create xmlns:host="urn:ietf:params:xml:ns:host-1.0">`)
	assert.Contains(t, doc, `<host:name>ns1.eppdev.com</host:name>`)
	assert.Contains(t, doc, `<host:addr ip="v4">203.0.113.44</host:addr>`)
	assert.Contains(t, doc, `<host:addr ip="v6">2001:db8::1</host:addr>`)
}

func TestHostUpdateSerialize(t *testing.T) {
	cmd := NewHostUpdate("ns1.eppdev.com",
		&HostAddRemove{Addresses: []HostAddr{V4("203.0.113.45")}},
		&HostAddRemove{Statuses: []HostStatus{{Status: "clientDeleteProhibited"}}},
		&HostChange{Name: "ns2.eppdev.com"},
	)
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:hostupd")
	require.NoError(t, err)

	assert.Contains(t, doc, `<host:add><host:addr ip="v4">203.0.113.45</host:addr></host:add>`)
	assert.Contains(t, doc, `<host:rem><host:status s="clientDeleteProhibited"></host:status></host:rem>`)
	assert.Contains(t, doc, `<host:chg><host:name>ns2.eppdev.com</host:name></host:chg>`)
}

func TestHostInfoResponseParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<resData><host:infData xmlns:host="urn:ietf:params:xml:ns:host-1.0">` +
		`<host:name>ns1.eppdev.com</host:name>` +
		`<host:roid>H1234-REP</host:roid>` +
		`<host:status s="linked"></host:status>` +
		`<host:addr ip="v4">203.0.113.44</host:addr>` +
		`<host:clID>eppdev</host:clID>` +
		`<host:crID>eppdev</host:crID>` +
		`<host:crDate>2021-07-23T15:31:20.0Z</host:crDate>` +
		`</host:infData></resData>` +
		`<trID><svTRID>SRV-5</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[HostInfoData, protocol.NoExtension](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.ResData)

	inf := resp.ResData.InfData
	assert.Equal(t, "ns1.eppdev.com", inf.Name)
	require.Len(t, inf.Addresses, 1)
	assert.Equal(t, "v4", inf.Addresses[0].IP)
	assert.Equal(t, "203.0.113.44", inf.Addresses[0].Address)
	require.Len(t, inf.Statuses, 1)
	assert.Equal(t, "linked", inf.Statuses[0].Status)
}

func TestContactCreateSerialize(t *testing.T) {
	cmd := NewContactCreate("eppdev-contact-1", ContactCreateParams{
		PostalInfo: []ContactPostalInfo{{
			Type: "int",
			Name: "John Doe",
			Org:  "Eppdev Inc.",
			Address: ContactAddress{
				Streets:    []string{"58 Orchid Road"},
				City:       "Paris",
				PostalCode: "392374",
				Country:    "FR",
			},
		}},
		Voice:  &ContactPhone{Number: "+33.47237942"},
		Email:  "contact@eppdev.net",
		AuthPw: "eppdev-387323",
	})
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:contact")
	require.NoError(t, err)

	assert.Contains(t, doc, `<contact:create xmlns:contact="urn:ietf:params:xml:ns:contact-1.0">`)
	assert.Contains(t, doc, `<contact:postalInfo type="int">`)
	assert.Contains(t, doc, `<contact:street>58 Orchid Road</contact:street>`)
	assert.Contains(t, doc, `<contact:cc>FR</contact:cc>`)
	assert.Contains(t, doc, `<contact:voice>+33.47237942</contact:voice>`)
	assert.NotContains(t, doc, "<contact:fax>")
	assert.Contains(t, doc, `<contact:email>contact@eppdev.net</contact:email>`)
}

func TestContactInfoResponseParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<resData><contact:infData xmlns:contact="urn:ietf:params:xml:ns:contact-1.0">` +
		`<contact:id>eppdev-contact-1</contact:id>` +
		`<contact:roid>C1234-REP</contact:roid>` +
		`<contact:status s="ok"></contact:status>` +
		`<contact:postalInfo type="int"><contact:name>John Doe</contact:name>` +
		`<contact:addr><contact:street>58 Orchid Road</contact:street><contact:city>Paris</contact:city><contact:cc>FR</contact:cc></contact:addr>` +
		`</contact:postalInfo>` +
		`<contact:voice x="123">+33.47237942</contact:voice>` +
		`<contact:email>contact@eppdev.net</contact:email>` +
		`</contact:infData></resData>` +
		`<trID><svTRID>SRV-6</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[ContactInfoData, protocol.NoExtension](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.ResData)

	inf := resp.ResData.InfData
	assert.Equal(t, "eppdev-contact-1", inf.ID)
	require.Len(t, inf.PostalInfo, 1)
	assert.Equal(t, "John Doe", inf.PostalInfo[0].Name)
	assert.Equal(t, "Paris", inf.PostalInfo[0].Address.City)
	require.NotNil(t, inf.Voice)
	assert.Equal(t, "+33.47237942", inf.Voice.Number)
	assert.Equal(t, "123", inf.Voice.Extension)
}

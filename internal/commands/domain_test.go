package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eppwiresh/eppwire/internal/protocol"
)

func TestDomainCheckSerialize(t *testing.T) {
	cmd := NewDomainCheck([]string{"eppdev.com", "eppdev.net"})
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:1626454866")
	require.NoError(t, err)

	want := protocol.XMLHeader + "\n" +
		`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">` +
		`<command>` +
		`<check>` +
		`<domain:check xmlns:domain="urn:ietf:params:xml:ns:domain-1.0">` +
		`<domain:name>eppdev.com</domain:name>` +
		`<domain:name>eppdev.net</domain:name>` +
		`</domain:check>` +
		`</check>` +
		`<clTRID>cltrid:1626454866</clTRID>` +
		`</command></epp>`
	assert.Equal(t, want, doc)
}

func TestDomainCreateSerialize(t *testing.T) {
	cmd := NewDomainCreate("eppdev.com", DomainCreateParams{
		Period:      Years(2),
		Nameservers: []string{"ns1.eppdev.net", "ns2.eppdev.net"},
		Registrant:  "eppdev-contact-1",
		Contacts: []DomainContact{
			{Type: "admin", ID: "eppdev-contact-2"},
			{Type: "tech", ID: "eppdev-contact-3"},
		},
		AuthPw: "epP4uthd#v",
	})
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:create")
	require.NoError(t, err)

	// Schema-mandated element order inside <domain:create>.
	assert.Contains(t, doc,
		`<domain:name>eppdev.com</domain:name>`+
			`<domain:period unit="y">2</domain:period>`+
			`<domain:ns><domain:hostObj>ns1.eppdev.net</domain:hostObj><domain:hostObj>ns2.eppdev.net</domain:hostObj></domain:ns>`+
			`<domain:registrant>eppdev-contact-1</domain:registrant>`)
	assert.Contains(t, doc, `<domain:contact type="admin">eppdev-contact-2</domain:contact>`)
	assert.Contains(t, doc, `<domain:authInfo><domain:pw>epP4uthd#v</domain:pw></domain:authInfo>`)
}

func TestDomainTransferSerialize(t *testing.T) {
	cmd := NewDomainTransfer(TransferRequest, "eppdev.org", Years(1), "epP4uthd#v")
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:transfer")
	require.NoError(t, err)

	assert.Contains(t, doc, `<transfer op="request">`)
	assert.Contains(t, doc, `<domain:name>eppdev.org</domain:name>`)
	assert.Contains(t, doc, `<domain:period unit="y">1</domain:period>`)
}

func TestDomainUpdateSerialize(t *testing.T) {
	cmd := NewDomainUpdate("eppdev.com",
		&DomainAddRemove{Statuses: []DomainStatus{{Status: "clientHold"}}},
		&DomainAddRemove{Nameservers: &DomainNameservers{HostObjs: []string{"ns1.eppdev.net"}}},
		&DomainChange{Registrant: "eppdev-contact-9"},
	)
	doc, err := protocol.SerializeCommand(cmd, nil, "cltrid:update")
	require.NoError(t, err)

	assert.Contains(t, doc, `<domain:add><domain:status s="clientHold"></domain:status></domain:add>`)
	assert.Contains(t, doc, `<domain:rem><domain:ns><domain:hostObj>ns1.eppdev.net</domain:hostObj></domain:ns></domain:rem>`)
	assert.Contains(t, doc, `<domain:chg><domain:registrant>eppdev-contact-9</domain:registrant></domain:chg>`)
}

func TestDomainCheckResponseParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<resData><domain:chkData xmlns:domain="urn:ietf:params:xml:ns:domain-1.0">` +
		`<domain:cd><domain:name avail="1">eppdev.com</domain:name></domain:cd>` +
		`<domain:cd><domain:name avail="0">eppdev.net</domain:name><domain:reason>In use</domain:reason></domain:cd>` +
		`</domain:chkData></resData>` +
		`<trID><clTRID>cltrid:1</clTRID><svTRID>SRV-1</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[DomainCheckData, protocol.NoExtension](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.ResData)

	items := resp.ResData.ChkData.Items
	require.Len(t, items, 2)
	assert.Equal(t, "eppdev.com", items[0].Name.Name)
	assert.True(t, items[0].Name.Available)
	assert.False(t, items[1].Name.Available)
	assert.Equal(t, "In use", items[1].Reason)
}

func TestDomainInfoResponseParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<resData><domain:infData xmlns:domain="urn:ietf:params:xml:ns:domain-1.0">` +
		`<domain:name>eppdev.com</domain:name>` +
		`<domain:roid>D1234-REP</domain:roid>` +
		`<domain:status s="ok"></domain:status>` +
		`<domain:registrant>eppdev-contact-1</domain:registrant>` +
		`<domain:contact type="admin">eppdev-contact-2</domain:contact>` +
		`<domain:ns><domain:hostObj>ns1.eppdev.net</domain:hostObj></domain:ns>` +
		`<domain:clID>eppdev</domain:clID>` +
		`<domain:crID>eppdev</domain:crID>` +
		`<domain:crDate>2021-07-23T15:31:20.0Z</domain:crDate>` +
		`<domain:exDate>2023-07-23T15:31:20.0Z</domain:exDate>` +
		`<domain:authInfo><domain:pw>epP4uthd#v</domain:pw></domain:authInfo>` +
		`</domain:infData></resData>` +
		`<trID><clTRID>cltrid:2</clTRID><svTRID>SRV-2</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[DomainInfoData, protocol.NoExtension](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.ResData)

	inf := resp.ResData.InfData
	assert.Equal(t, "eppdev.com", inf.Name)
	assert.Equal(t, "D1234-REP", inf.ROID)
	require.Len(t, inf.Statuses, 1)
	assert.Equal(t, "ok", inf.Statuses[0].Status)
	assert.Equal(t, "eppdev-contact-1", inf.Registrant)
	assert.Equal(t, []string{"ns1.eppdev.net"}, inf.Nameservers)
	assert.Equal(t, "2023-07-23T15:31:20.0Z", inf.ExpiryDate)
	require.NotNil(t, inf.AuthInfo)
	assert.Equal(t, "epP4uthd#v", inf.AuthInfo.Password)
}

func TestDomainRenewResponseParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<resData><domain:renData xmlns:domain="urn:ietf:params:xml:ns:domain-1.0">` +
		`<domain:name>eppdev.com</domain:name>` +
		`<domain:exDate>2024-07-23T15:31:20.0Z</domain:exDate>` +
		`</domain:renData></resData>` +
		`<trID><svTRID>SRV-3</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[DomainRenewData, protocol.NoExtension](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.ResData)
	assert.Equal(t, "2024-07-23T15:31:20.0Z", resp.ResData.RenData.ExpiryDate)
}

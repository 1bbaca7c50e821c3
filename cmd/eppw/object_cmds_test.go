package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eppwiresh/eppwire/internal/commands"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

func TestResDataMissing(t *testing.T) {
	// Success envelope with no <resData>: must surface as an error, not a
	// nil dereference.
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<trID><clTRID>cltrid:check</clTRID><svTRID>SRV-NODATA</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[commands.DomainCheckData, protocol.NoExtension](doc)
	require.NoError(t, err)
	require.Nil(t, resp.ResData)

	data, err := resData(resp)
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "SRV-NODATA")
}

func TestResDataPresent(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<resData><domain:chkData xmlns:domain="urn:ietf:params:xml:ns:domain-1.0">` +
		`<domain:cd><domain:name avail="1">eppdev.com</domain:name></domain:cd>` +
		`</domain:chkData></resData>` +
		`<trID><clTRID>cltrid:check</clTRID><svTRID>SRV-CHK</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[commands.DomainCheckData, protocol.NoExtension](doc)
	require.NoError(t, err)

	data, err := resData(resp)
	require.NoError(t, err)
	require.Len(t, data.ChkData.Items, 1)
	assert.Equal(t, "eppdev.com", data.ChkData.Items[0].Name.Name)
}

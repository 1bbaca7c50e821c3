package extensions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eppwiresh/eppwire/internal/commands"
	"github.com/eppwiresh/eppwire/internal/protocol"
)

func TestRgpRestoreRequestSerialize(t *testing.T) {
	// An RGP restore rides on a domain update with empty change blocks.
	cmd := commands.NewDomainUpdate("eppdev.com", nil, nil, nil)
	doc, err := protocol.SerializeCommand(cmd, NewRgpRestoreRequest(), "cltrid:rgp")
	require.NoError(t, err)

	assert.Contains(t, doc,
		`<extension>`+
			`<rgp:update xmlns:rgp="urn:ietf:params:xml:ns:rgp-1.0">`+
			`<rgp:restore op="request"></rgp:restore>`+
			`</rgp:update>`+
			`</extension>`)
	// Extension sits between the command element and the clTRID.
	assert.Regexp(t, `</update><extension>.*</extension><clTRID>`, doc)
}

func TestRgpUpdateDataParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<extension><rgp:upData xmlns:rgp="urn:ietf:params:xml:ns:rgp-1.0">` +
		`<rgp:rgpStatus s="pendingRestore"></rgp:rgpStatus>` +
		`</rgp:upData></extension>` +
		`<trID><svTRID>SRV-7</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[protocol.NoData, RgpUpdateData](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.Extension)
	require.Len(t, resp.Extension.UpData.Statuses, 1)
	assert.Equal(t, "pendingRestore", resp.Extension.UpData.Statuses[0].Status)
}

func TestNameStoreSerialize(t *testing.T) {
	cmd := commands.NewDomainCheck([]string{"eppdev.com"})
	doc, err := protocol.SerializeCommand(cmd, NewNameStore("dotCOM"), "cltrid:ns")
	require.NoError(t, err)

	assert.Contains(t, doc,
		`<namestoreExt:namestoreExt xmlns:namestoreExt="http://www.verisign-grs.com/epp/namestoreExt-1.1">`+
			`<namestoreExt:subProduct>dotCOM</namestoreExt:subProduct>`+
			`</namestoreExt:namestoreExt>`)
}

func TestNameStoreDataParse(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="1000"><msg>Command completed successfully</msg></result>` +
		`<extension><namestoreExt:namestoreExt xmlns:namestoreExt="http://www.verisign-grs.com/epp/namestoreExt-1.1">` +
		`<namestoreExt:subProduct>dotCOM</namestoreExt:subProduct>` +
		`</namestoreExt:namestoreExt></extension>` +
		`<trID><svTRID>SRV-8</svTRID></trID>` +
		`</response></epp>`

	resp, err := protocol.Deserialize[protocol.NoData, NameStoreData](doc)
	require.NoError(t, err)
	require.NotNil(t, resp.Extension)
	assert.Equal(t, "dotCOM", resp.Extension.NamestoreExt.SubProduct)
}

func TestConsolidateSyncSerialize(t *testing.T) {
	cmd := commands.NewDomainUpdate("eppdev.com", nil, nil, nil)
	doc, err := protocol.SerializeCommand(cmd, NewConsolidateSync(time.February, 5), "cltrid:sync")
	require.NoError(t, err)

	assert.Contains(t, doc,
		`<sync:update xmlns:sync="http://www.verisign.com/epp/sync-1.0">`+
			`<sync:expMonthDay>--02-05</sync:expMonthDay>`+
			`</sync:update>`)
}

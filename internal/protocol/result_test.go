package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCodePartition(t *testing.T) {
	success := []ResultCode{1000, 1001, 1300, 1301, 1500}
	for _, code := range success {
		assert.True(t, code.IsSuccess(), "code %d should be a success", code)
		assert.True(t, code.Known(), "code %d should be known", code)
	}

	failure := []ResultCode{
		2000, 2001, 2002, 2003, 2004, 2005,
		2100, 2101, 2102, 2103, 2104, 2105, 2106,
		2200, 2201, 2202,
		2300, 2301, 2302, 2303, 2304, 2305, 2306, 2307, 2308,
		2400, 2500, 2501, 2502,
	}
	for _, code := range failure {
		assert.False(t, code.IsSuccess(), "code %d should be a failure", code)
		assert.True(t, code.Known(), "code %d should be known", code)
	}
}

func TestResultCodeUnknownRejected(t *testing.T) {
	for _, code := range []ResultCode{0, 999, 1100, 1999, 2050, 2503, 9999} {
		assert.False(t, code.Known(), "code %d should be unknown", code)
	}
}

func TestResultCodeDecodeUnknownIsCodecError(t *testing.T) {
	doc := `<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><response>` +
		`<result code="9999"><msg>made up</msg></result>` +
		`<trID><svTRID>SRV-1</svTRID></trID></response></epp>`

	_, err := Deserialize[NoData, NoExtension](doc)
	require.Error(t, err)
	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "9999")
}

func TestResultCodeString(t *testing.T) {
	assert.Equal(t, "command completed successfully", CommandCompleted.String())
	assert.Equal(t, "object does not exist", ObjectDoesNotExist.String())
	assert.Equal(t, "session limit exceeded; server closing connection", SessionLimitExceededClosing.String())
}

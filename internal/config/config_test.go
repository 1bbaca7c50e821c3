package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registries.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeConfig(t, `
[registries.verisign]
host = "epp.example-grs.com"
port = 700
timeout_secs = 60
username = "eppdev"

[registries.sandbox]
host = "epp-ote.example-grs.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	reg, err := cfg.Registry("verisign")
	require.NoError(t, err)
	assert.Equal(t, "epp.example-grs.com", reg.Host)
	assert.Equal(t, uint16(700), reg.Port)
	assert.Equal(t, 60, reg.TimeoutSecs)
	assert.Equal(t, "eppdev", reg.Username)

	params, err := reg.Params("verisign")
	require.NoError(t, err)
	assert.Equal(t, "epp.example-grs.com:700", params.Addr())
	assert.Equal(t, 60*time.Second, params.Timeout)
	assert.Empty(t, params.Certificates)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[registries.sandbox]
host = "epp-ote.example-grs.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	reg, err := cfg.Registry("sandbox")
	require.NoError(t, err)
	assert.Equal(t, uint16(DefaultPort), reg.Port)
	assert.Equal(t, int(DefaultTimeout/time.Second), reg.TimeoutSecs)
}

func TestLoadMissingProfile(t *testing.T) {
	path := writeConfig(t, `
[registries.sandbox]
host = "epp-ote.example-grs.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Registry("nonexistent")
	assert.ErrorContains(t, err, "not configured")
}

func TestLoadRejectsHalfKeypair(t *testing.T) {
	path := writeConfig(t, `
[registries.broken]
host = "epp.example-grs.com"
cert_file = "client.pem"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Registry("broken")
	assert.ErrorContains(t, err, "cert_file and key_file together")
}

func TestEnvProfile(t *testing.T) {
	t.Setenv("EPPW_HOST", "epp.env.example")
	t.Setenv("EPPW_PORT", "7700")
	t.Setenv("EPPW_USERNAME", "envuser")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)

	reg, err := cfg.Registry("env")
	require.NoError(t, err)
	assert.Equal(t, "epp.env.example", reg.Host)
	assert.Equal(t, uint16(7700), reg.Port)
	assert.Equal(t, "envuser", reg.Username)
}

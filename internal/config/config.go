package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/eppwiresh/eppwire/internal/connection"
)

// DefaultPort is the IANA-assigned port for EPP over TLS.
const DefaultPort = 700

// DefaultTimeout applies when a profile does not set timeout_secs.
const DefaultTimeout = 30 * time.Second

// Config is the top-level configuration loaded from registries.toml: one
// connection profile per registry.
type Config struct {
	Registries map[string]Registry `toml:"registries"`
}

// Registry is one named connection profile.
type Registry struct {
	Host        string `toml:"host"`
	Port        uint16 `toml:"port"`
	TimeoutSecs int    `toml:"timeout_secs"`
	Username    string `toml:"username"`
	// Optional PEM files presenting a client identity for mutual TLS.
	CertFile string `toml:"cert_file"`
	KeyFile  string `toml:"key_file"`
	// Extension URIs declared at login (extURI).
	Extensions []string `toml:"extensions"`
}

// Load reads a registries.toml file and applies environment variable
// overrides (EPPW_HOST, EPPW_PORT, EPPW_USERNAME) as an extra "env"
// profile. A missing file is fine when the env profile is complete;
// anything else unparsable is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{Registries: map[string]Registry{}}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if cfg.Registries == nil {
			cfg.Registries = map[string]Registry{}
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if host := os.Getenv("EPPW_HOST"); host != "" {
		reg := Registry{Host: host, Username: os.Getenv("EPPW_USERNAME")}
		if port := os.Getenv("EPPW_PORT"); port != "" {
			n, err := strconv.ParseUint(port, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("EPPW_PORT %q: %w", port, err)
			}
			reg.Port = uint16(n)
		}
		cfg.Registries["env"] = reg
	}

	return cfg, nil
}

// Registry returns the named profile, validated and with defaults applied.
func (c *Config) Registry(name string) (Registry, error) {
	reg, ok := c.Registries[name]
	if !ok {
		return Registry{}, fmt.Errorf("registry %q is not configured", name)
	}
	if reg.Host == "" {
		return Registry{}, fmt.Errorf("registry %q has no host", name)
	}
	if reg.Port == 0 {
		reg.Port = DefaultPort
	}
	if reg.TimeoutSecs == 0 {
		reg.TimeoutSecs = int(DefaultTimeout / time.Second)
	}
	if (reg.CertFile == "") != (reg.KeyFile == "") {
		return Registry{}, fmt.Errorf("registry %q must set cert_file and key_file together", name)
	}
	return reg, nil
}

// Params converts a profile into connector parameters, loading the client
// keypair when one is configured.
func (r Registry) Params(name string) (connection.Params, error) {
	p := connection.Params{
		Registry: name,
		Host:     r.Host,
		Port:     r.Port,
		Timeout:  time.Duration(r.TimeoutSecs) * time.Second,
	}
	if r.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(r.CertFile, r.KeyFile)
		if err != nil {
			return connection.Params{}, fmt.Errorf("loading client keypair for %q: %w", name, err)
		}
		p.Certificates = []tls.Certificate{cert}
	}
	return p, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/eppwiresh/eppwire/internal/client"
	"github.com/eppwiresh/eppwire/internal/commands"
	"github.com/eppwiresh/eppwire/internal/config"
	"github.com/eppwiresh/eppwire/internal/protocol"
	"github.com/eppwiresh/eppwire/internal/store"
)

// dialClient connects to the selected registry profile without logging in.
// Used by subcommands that only need the greeting exchange.
func dialClient() (*client.Client, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}

	name := registryFlag
	if name == "" {
		name = "env"
	}
	reg, err := cfg.Registry(name)
	if err != nil {
		return nil, err
	}
	params, err := reg.Params(name)
	if err != nil {
		return nil, err
	}

	c, err := client.Connect(params, reg.Username)
	if err != nil {
		return nil, err
	}

	if journalFlag {
		if err := os.MkdirAll(dataDir(), 0o755); err != nil {
			c.Shutdown()
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		j, err := store.OpenJournal(dataDir())
		if err != nil {
			c.Shutdown()
			return nil, fmt.Errorf("opening journal: %w", err)
		}
		c.SetJournal(j)
	}
	return c, nil
}

// openSession dials the registry and logs in. The returned closer logs out
// and tears the connection down; call it even when a command fails.
func openSession() (*client.Client, func(), error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, nil, err
	}

	name := registryFlag
	if name == "" {
		name = "env"
	}
	reg, err := cfg.Registry(name)
	if err != nil {
		return nil, nil, err
	}
	if reg.Username == "" {
		return nil, nil, fmt.Errorf("registry %q has no username (set username in registries.toml or EPPW_USERNAME)", name)
	}

	password := os.Getenv("EPPW_PASSWORD")
	if password == "" {
		password, err = promptPassword(fmt.Sprintf("Password for %s@%s: ", reg.Username, reg.Host))
		if err != nil {
			return nil, nil, err
		}
	}

	params, err := reg.Params(name)
	if err != nil {
		return nil, nil, err
	}
	c, err := client.Connect(params, reg.Username)
	if err != nil {
		return nil, nil, err
	}

	if journalFlag {
		if err := os.MkdirAll(dataDir(), 0o755); err != nil {
			c.Shutdown()
			return nil, nil, fmt.Errorf("creating data dir: %w", err)
		}
		j, err := store.OpenJournal(dataDir())
		if err != nil {
			c.Shutdown()
			return nil, nil, fmt.Errorf("opening journal: %w", err)
		}
		c.SetJournal(j)
	}

	login := commands.NewLogin(reg.Username, password, reg.Extensions)
	if _, err := client.Transact[protocol.NoData, protocol.NoExtension](c, login, nil, clTRID(c)); err != nil {
		c.Shutdown()
		return nil, nil, fmt.Errorf("login: %w", err)
	}

	closer := func() {
		logout := commands.NewLogout()
		_, _ = client.Transact[protocol.NoData, protocol.NoExtension](c, logout, nil, clTRID(c))
		_ = c.Shutdown()
	}
	return c, closer, nil
}

// clTRID returns the --cltrid override or a generated identifier.
func clTRID(c *client.Client) string {
	if clTRIDFlag != "" {
		return clTRIDFlag
	}
	return c.NewClTRID()
}

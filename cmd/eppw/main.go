package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eppwiresh/eppwire/internal/log"
)

var (
	configFlag   string
	registryFlag string
	clTRIDFlag   string
	journalFlag  bool
	verboseFlag  bool
	jsonLogFlag  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eppw",
		Short: "EPP registry client",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := ""
			if verboseFlag {
				level = "debug"
			}
			cfg := log.Config{Level: level}
			if !jsonLogFlag && isatty.IsTerminal(os.Stderr.Fd()) {
				cfg.Output = zerolog.ConsoleWriter{Out: os.Stderr}
			}
			log.Configure(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to registries.toml (default: $HOME/.eppw/registries.toml)")
	rootCmd.PersistentFlags().StringVarP(&registryFlag, "registry", "r", "", "Registry profile to connect to")
	rootCmd.PersistentFlags().StringVar(&clTRIDFlag, "cltrid", "", "Client transaction ID override")
	rootCmd.PersistentFlags().BoolVar(&journalFlag, "journal", false, "Record transactions in the local journal")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogFlag, "json-log", false, "Log as JSON even on a terminal")

	rootCmd.AddCommand(
		greetingCmd(),
		helloCmd(),
		checkCmd(),
		infoCmd(),
		createCmd(),
		deleteCmd(),
		renewCmd(),
		transferCmd(),
		pollCmd(),
		rawCmd(),
		journalCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// Paths
// ---------------------------------------------------------------------------

func dataDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		fmt.Fprintln(os.Stderr, "[eppw] ERROR: $HOME environment variable is not set")
		fmt.Fprintln(os.Stderr, "[eppw] WARNING: Using insecure fallback directory /tmp/.eppw")
		return "/tmp/.eppw"
	}
	return filepath.Join(home, ".eppw")
}

func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	return filepath.Join(dataDir(), "registries.toml")
}

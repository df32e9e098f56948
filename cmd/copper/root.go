package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/copperlint/copper/internal/version"
	"github.com/copperlint/copper/pkg/config"
	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/logging"
	"github.com/copperlint/copper/pkg/manifest"
	"github.com/copperlint/copper/pkg/registry"
)

var (
	verbosity int
	cfgFile   string
	requires  []string

	rootCmd = &cobra.Command{
		Use:   "copper",
		Short: "Cop registry and name resolution for static analysis",
		Long: `copper maintains the catalog of inspection rules ("cops") grouped into
departments, resolves short or misspelled cop names against it, and computes
which cops should run under a layered configuration.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Project configuration file (default: .copper.yml in the working directory)")
	rootCmd.PersistentFlags().StringArrayVar(&requires, "require", nil,
		"Additional cop manifest to load after the built-in catalog (repeatable)")

	rootCmd.AddCommand(copsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("copper version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

// buildRegistry assembles the registry snapshot: the built-in catalog plus
// every manifest named with --require, in flag order.
func buildRegistry() (*registry.Registry, error) {
	cops, err := manifest.Default()
	if err != nil {
		return nil, err
	}
	for _, path := range requires {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		extra, err := manifest.Load(f, path)
		f.Close()
		if err != nil {
			return nil, err
		}
		cops = append(cops, extra...)
	}
	return registry.New(cops), nil
}

// loadConfig resolves the effective configuration against the registry and
// applies its log level.
func loadConfig(reg *registry.Registry) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile, reg)
	} else {
		cfg, err = config.Load(".", reg)
	}
	if err != nil {
		return nil, err
	}
	logging.SetLevelFromConfig(cfg.Log.Level)
	return cfg, nil
}

// resolveOnly maps user-supplied --only names to qualified names, with the
// CLI as origin in diagnostics.
func resolveOnly(reg *registry.Registry, names []string) ([]string, error) {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		qn, err := reg.QualifiedCopName(name, "--only")
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, qn)
	}
	return resolved, nil
}

// statusLabel renders a cop's effective status under the configuration.
func statusLabel(c cop.Cop, cfg *config.Config) string {
	status := c.Enabled
	if setting, ok := cfg.ForCop(c.QualifiedName()); ok && setting.Enabled != cop.StatusUnset {
		status = setting.Enabled
	}
	switch status {
	case cop.StatusDisabled:
		return "disabled"
	case cop.StatusPending:
		return "pending"
	default:
		return "enabled"
	}
}

// safeLabel renders a cop's effective safety under the configuration.
func safeLabel(c cop.Cop, cfg *config.Config) string {
	setting, _ := cfg.ForCop(c.QualifiedName())
	if setting.SafeOrDefault(c) {
		return "safe"
	}
	return "unsafe"
}

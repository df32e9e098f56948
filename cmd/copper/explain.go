package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/copperlint/copper/pkg/config"
	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/errors"
	"github.com/copperlint/copper/pkg/style"
)

var explainCmd = &cobra.Command{
	Use:   "explain <cop>",
	Short: "Show what a cop checks",
	Long: `Resolve a cop name, bare or qualified, and render its documentation.
Bare names unique to one department resolve automatically; bare names present
in several departments must be qualified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(reg)
		if err != nil {
			return err
		}

		qualified, err := reg.QualifiedCopName(args[0], "command line")
		if err != nil {
			return err
		}

		var found *cop.Cop
		for _, c := range reg.Cops() {
			if c.QualifiedName() == qualified {
				found = &c
				break
			}
		}
		if found == nil {
			return errors.Newf(errors.ErrNotFound, "no cop named %q is registered", qualified)
		}

		doc := copMarkdown(*found, cfg)
		if style.ShouldColorize(cfg.Output.Color, os.Stdout) {
			fmt.Print(style.NewMarkdownRenderer().Render(doc))
		} else {
			fmt.Print(doc)
		}
		return nil
	},
}

// copMarkdown builds the documentation page for one cop.
func copMarkdown(c cop.Cop, cfg *config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.QualifiedName())
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Description)
	}
	fmt.Fprintf(&b, "- Department: `%s`\n", c.Department())
	fmt.Fprintf(&b, "- Status: %s\n", statusLabel(c, cfg))
	fmt.Fprintf(&b, "- Safety: %s\n", safeLabel(c, cfg))
	return b.String()
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/copperlint/copper/pkg/config"
	"github.com/copperlint/copper/pkg/export"
	"github.com/copperlint/copper/pkg/registry"
	"github.com/copperlint/copper/pkg/style"
)

var (
	copsOnly        []string
	copsSafeOnly    bool
	copsEnabledOnly bool
	copsFormat      string
)

var copsCmd = &cobra.Command{
	Use:   "cops [department...]",
	Short: "List the cop catalog",
	Long: `List registered cops, grouped by department in registration order, with
their effective status under the project configuration. Department arguments
narrow the listing; --enabled-only applies the same filter the run pipeline
uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(reg)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			reg = filterDepartments(reg, args)
		}
		if copsEnabledOnly {
			only, err := resolveOnly(reg, copsOnly)
			if err != nil {
				return err
			}
			reg = reg.Enabled(cfg, only, copsSafeOnly)
		}

		format := copsFormat
		if format == "" {
			format = cfg.Output.Format
		}
		switch format {
		case "xml":
			return export.WriteXML(os.Stdout, reg)
		case "plain":
			printPlain(reg, cfg)
			return nil
		case "table":
			return printTable(reg, cfg)
		default:
			return fmt.Errorf("unknown format %q (want table, plain or xml)", format)
		}
	},
}

func init() {
	copsCmd.Flags().StringArrayVar(&copsOnly, "only", nil,
		"Force-include a cop when filtering with --enabled-only (repeatable)")
	copsCmd.Flags().BoolVar(&copsSafeOnly, "safe", false,
		"With --enabled-only, drop cops marked unsafe")
	copsCmd.Flags().BoolVar(&copsEnabledOnly, "enabled-only", false,
		"List only the cops that would run under the configuration")
	copsCmd.Flags().StringVar(&copsFormat, "format", "",
		"Output format: table, plain or xml (default from configuration)")
}

// filterDepartments keeps the named departments, preserving registry order.
func filterDepartments(reg *registry.Registry, departments []string) *registry.Registry {
	wanted := make(map[string]bool, len(departments))
	for _, d := range departments {
		wanted[d] = true
	}
	for _, d := range reg.Departments() {
		if !wanted[d] {
			reg = reg.WithoutDepartment(d)
		}
	}
	return reg
}

func printTable(reg *registry.Registry, cfg *config.Config) error {
	data := pterm.TableData{{"Cop", "Status", "Safety", "Description"}}
	for _, c := range reg.Cops() {
		data = append(data, []string{
			c.QualifiedName(),
			statusLabel(c, cfg),
			safeLabel(c, cfg),
			c.Description,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !style.ShouldColorize(cfg.Output.Color, os.Stdout) {
		out, err := table.Srender()
		if err != nil {
			return err
		}
		fmt.Println(pterm.RemoveColorFromString(out))
		return nil
	}
	return table.Render()
}

var statusStyles = map[string]string{
	"enabled":  "Enabled",
	"disabled": "Disabled",
	"pending":  "Pending",
}

func printPlain(reg *registry.Registry, cfg *config.Config) {
	colorize := style.ShouldColorize(cfg.Output.Color, os.Stdout)
	render := func(name, s string) string {
		if !colorize {
			return s
		}
		return style.Get(name).Render(s)
	}

	for _, department := range reg.Departments() {
		fmt.Println(render("Department", department))
		for _, c := range reg.WithDepartment(department).Cops() {
			status := statusLabel(c, cfg)
			labels := []string{render(statusStyles[status], status)}
			if safeLabel(c, cfg) == "unsafe" {
				labels = append(labels, render("Unsafe", "unsafe"))
			}
			fmt.Printf("%s (%s)\n",
				render("CopName", c.QualifiedName()),
				strings.Join(labels, ", "))
		}
	}
}

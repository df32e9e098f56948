package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/copperlint/copper/pkg/config"
	"github.com/copperlint/copper/pkg/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a .copper.toml in the current directory with the tool defaults and
every registered cop listed as a commented-out section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		const target = ".copper.toml"
		if _, err := os.Stat(target); err == nil {
			return errors.Newf(errors.ErrInvalidInput, "%s already exists", target)
		}

		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		content, err := config.GenerateConfigContent(reg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", target)
		return nil
	},
}

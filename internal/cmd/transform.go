package cmd

import (
	"fmt"

	"github.com/hoppxi/iconify/internal/picker"
	"github.com/spf13/cobra"
)

func runTransform(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if selectInput {
		dir, err := picker.SelectDir("Select icon staging directory", settings.InputDir)
		if err != nil {
			return err
		}
		settings.InputDir = dir
	}

	report, err := settings.Transformer().TransformAll(cmd.Context())
	if report != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d icon(s) into %s\n", len(report.Converted), settings.OutputDir)
		if n := len(report.Failed); n > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d icon(s) failed\n", n)
		}
	}
	return err
}

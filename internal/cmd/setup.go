package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hoppxi/iconify/config"
	"github.com/hoppxi/iconify/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Config struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	KeepGoing   bool   `yaml:"keep_going"`
	StrictNames bool   `yaml:"strict_names"`
	Notify      bool   `yaml:"notify"`
	Debounce    string `yaml:"debounce"`
}

var useDefaults bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write an iconify.yaml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		path := configFile
		if path == "" {
			path = config.FileName
		}

		if utils.FileExists(path) {
			if !confirm(reader, out, path+" already exists. Overwrite with new settings?") {
				return nil
			}
		}

		if err := generateConfig(reader, out, path, useDefaults); err != nil {
			return err
		}
		fmt.Fprintf(out, "Config written to %s\n", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&useDefaults, "defaults", false, "write the default settings without prompting")
}

func generateConfig(reader *bufio.Reader, w io.Writer, path string, useDefaults bool) error {
	if useDefaults {
		return utils.WriteFileAtomic(path, config.DefaultConfig(), 0o644)
	}

	conf := Config{}
	if err := yaml.Unmarshal(config.DefaultConfig(), &conf); err != nil {
		return fmt.Errorf("embedded config is invalid: %w", err)
	}

	conf.InputDir = prompt(reader, w, "Staging directory", conf.InputDir)
	conf.OutputDir = prompt(reader, w, "Output directory", conf.OutputDir)
	conf.KeepGoing = confirm(reader, w, "Continue with the next icon when one fails?")
	conf.StrictNames = !confirm(reader, w, "Allow component names that are not valid identifiers?")
	conf.Notify = confirm(reader, w, "Send desktop notifications in watch mode?")
	conf.Debounce = prompt(reader, w, "Watch debounce", conf.Debounce)

	d, err := yaml.Marshal(&conf)
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, d, 0o644)
}

func prompt(r *bufio.Reader, w io.Writer, label, defaultValue string) string {
	fmt.Fprintf(w, "%s [%s]: ", label, defaultValue)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

func confirm(r *bufio.Reader, w io.Writer, message string) bool {
	fmt.Fprintf(w, "%s (y/N): ", message)
	input, _ := r.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

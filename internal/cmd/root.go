package cmd

import (
	"fmt"
	"os"

	"github.com/hoppxi/iconify/internal/manager"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var (
	configFile  string
	selectInput bool
)

// viper key -> flag name
var flagKeys = map[string]string{
	"input_dir":    "input",
	"output_dir":   "output",
	"keep_going":   "keep-going",
	"strict_names": "strict-names",
	"notify":       "notify",
	"debounce":     "debounce",
}

var rootCmd = &cobra.Command{
	Use:           "iconify",
	Version:       Version,
	Short:         "Convert staged SVG icons into Solid components",
	Long:          "Iconify turns every .svg file in the staging directory into a .tsx Solid component and removes the source once it has been written",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTransform,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// loadSettings merges defaults, iconify.yaml, ICONIFY_ env vars and the
// flags of cmd, in increasing priority.
func loadSettings(cmd *cobra.Command) (manager.Settings, error) {
	manager.Config.File = configFile
	v, err := manager.Config.Load()
	if err != nil {
		return manager.Settings{}, err
	}

	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return manager.Settings{}, err
		}
	}

	return manager.Decode(v)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default ./iconify.yaml)")
	flags.StringP("input", "i", "", "staging directory with .svg icons")
	flags.StringP("output", "o", "", "directory the .tsx components are written to")
	flags.Bool("keep-going", false, "continue with the next icon when one fails")
	flags.Bool("strict-names", true, "reject icons whose component name is not a valid identifier")

	rootCmd.Flags().BoolVar(&selectInput, "select", false, "pick the staging directory with a file dialog")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initConfigCmd)
}

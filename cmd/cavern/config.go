package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cavern/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in cave configuration as YAML. Save it to
~/.cavern/configs/cavern.yaml or pass it with --config to customize caves.

With --resolved, print the configuration after --config and --difficulty
are applied instead.

Examples:
  cavern config > ~/.cavern/configs/cavern.yaml
  cavern config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !flagConfigResolved {
			os.Stdout.Write(config.DefaultYAML())
			return
		}
		logger, err := newLogger(os.Stderr)
		if err != nil {
			fail(err)
		}
		cfg, err := loadConfig(logger)
		if err != nil {
			fail(err)
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			fail(err)
		}
		enc.Close()
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
}

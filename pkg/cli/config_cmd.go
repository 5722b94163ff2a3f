package cli

import (
	"fmt"

	"github.com/guidtrack/guidctl/pkg/cli/internal/output"
	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective guidctl configuration",
	Long: `Show the configuration in effect after merging defaults, the config
file, and GUIDCTL_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(cfg)
		}

		path := configPath
		if path == "" {
			path = cliconfig.Path()
		}
		if path == "" {
			path = "(none)"
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# config file: %s\n", path)
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var (
	initOutput      string
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter guidctl config file",
	Long: `Create a starter configuration file pointing at the built-in simulator.

The file is written to the default location (~/.config/guidctl/config.yaml)
unless --output is given. Interactive mode prompts for the endpoint, the
default user, and whether to record history.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initOutput
		if path == "" {
			path = cliconfig.Path()
		}
		if path == "" {
			return errors.New("cannot determine a config location - pass --output")
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("file already exists: %s\n\nUse --force to overwrite", path)
		}

		cfg := &cliconfig.Config{
			Endpoint: "mock://test.net",
			History: cliconfig.HistoryConfig{
				Enabled: true,
				Limit:   cliconfig.DefaultHistoryLimit,
				Path:    cliconfig.DefaultHistoryPath(),
			},
			Log: cliconfig.LogConfig{Level: "info", Format: "text"},
		}

		if initInteractive {
			if err := runInteractiveInit(cfg); err != nil {
				return err
			}
		}

		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Created %s\n", path)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  guidctl create -u alice")
		fmt.Println("  guidctl history")
		return nil
	},
}

// runInteractiveInit prompts for the starter configuration values.
func runInteractiveInit(cfg *cliconfig.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GUID API endpoint URL").
				Description("mock://test.net answers from the built-in simulator").
				Value(&cfg.Endpoint).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("endpoint is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Default user for create").
				Placeholder("alice").
				Value(&cfg.User),
			huh.NewConfirm().
				Title("Record invocation history?").
				Value(&cfg.History.Enabled),
		),
	)
	return form.Run()
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output path (default: the user config location)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Prompt for configuration values")
	rootCmd.AddCommand(initCmd)
}

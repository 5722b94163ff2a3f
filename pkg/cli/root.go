package cli

import (
	"fmt"
	"os"

	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	endpointURL string
	configPath  string
	jsonOutput  bool
	verbose     bool
	noHistory   bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "guidctl",
	Short: "guidctl is a client for the GUID lifecycle API",
	Long: `guidctl creates, reads, updates, and deletes GUID records on a remote
GUID lifecycle API over HTTP.

Endpoints with the mock:// scheme never touch the network: requests are
answered by a built-in simulator that derives the outcome from the GUID
itself, so success and failure paths can be exercised offline.

Configuration can be provided via flags, environment variables, or a
configuration file. By default, guidctl looks for a configuration file
at ~/.config/guidctl/config.yaml.`,
	// No Run function here means 'guidctl' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Define persistent flags that apply globally to all guidctl commands
	rootCmd.PersistentFlags().StringVar(&endpointURL, "url", cliconfig.GetEndpoint(), "GUID API endpoint URL (mock:// serves from the built-in simulator)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a guidctl config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Skip recording this invocation in history")
}

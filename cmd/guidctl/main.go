// guidctl - Command-line client for the GUID lifecycle API
package main

import (
	"github.com/guidtrack/guidctl/pkg/cli"
	"github.com/joho/godotenv"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	// A .env file in the working directory may supply GUIDCTL_* variables.
	_ = godotenv.Load()

	cli.Version, cli.Commit, cli.BuildDate = Version, Commit, BuildDate

	cli.Execute()
}

package cli

import (
	"context"

	"github.com/guidtrack/guidctl/pkg/client"
	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/spf13/cobra"
)

var readGUID string

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a GUID record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guid.Validate(readGUID); err != nil {
			return err
		}
		return runOperation(cmd, "read", readGUID, func(ctx context.Context, c client.Client) (*client.Response, error) {
			return c.Read(ctx, readGUID)
		})
	},
}

func init() {
	readCmd.Flags().StringVarP(&readGUID, "guid", "g", "", "GUID of the record to read")
	_ = readCmd.MarkFlagRequired("guid")
	rootCmd.AddCommand(readCmd)
}

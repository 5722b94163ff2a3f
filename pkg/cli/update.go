package cli

import (
	"context"

	"github.com/guidtrack/guidctl/pkg/client"
	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/spf13/cobra"
)

var (
	updateGUID   string
	updateExpire string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the expiration time of a GUID record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guid.Validate(updateGUID); err != nil {
			return err
		}
		if err := guid.ValidateExpire(updateExpire); err != nil {
			return err
		}
		return runOperation(cmd, "update", updateGUID, func(ctx context.Context, c client.Client) (*client.Response, error) {
			return c.Update(ctx, updateGUID, updateExpire)
		})
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateGUID, "guid", "g", "", "GUID of the record to update")
	updateCmd.Flags().StringVarP(&updateExpire, "expire", "e", "", "New expiration time as epoch seconds, must be in the future")
	_ = updateCmd.MarkFlagRequired("guid")
	_ = updateCmd.MarkFlagRequired("expire")
	rootCmd.AddCommand(updateCmd)
}

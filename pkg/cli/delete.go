package cli

import (
	"context"

	"github.com/guidtrack/guidctl/pkg/client"
	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/spf13/cobra"
)

var deleteGUID string

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a GUID record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := guid.Validate(deleteGUID); err != nil {
			return err
		}
		return runOperation(cmd, "delete", deleteGUID, func(ctx context.Context, c client.Client) (*client.Response, error) {
			return c.Delete(ctx, deleteGUID)
		})
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteGUID, "guid", "g", "", "GUID of the record to delete")
	_ = deleteCmd.MarkFlagRequired("guid")
	rootCmd.AddCommand(deleteCmd)
}

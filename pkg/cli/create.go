package cli

import (
	"context"
	"errors"

	"github.com/guidtrack/guidctl/pkg/cli/internal/output"
	"github.com/guidtrack/guidctl/pkg/client"
	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/spf13/cobra"
)

var (
	createGUID   string
	createUser   string
	createExpire string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a GUID record",
	Long: `Create a GUID record on the endpoint.

When --guid is given the record is created under that exact GUID and the
optional --expire is sent along. Without --guid the server assigns both
the GUID and the expiration time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if createUser == "" {
			return errors.New("a user is required - pass --user or configure one with: guidctl init")
		}
		if createGUID != "" {
			if err := guid.Validate(createGUID); err != nil {
				return err
			}
		}
		if createExpire != "" {
			if err := guid.ValidateExpire(createExpire); err != nil {
				return err
			}
			if createGUID == "" {
				output.Warn("--expire is ignored when --guid is not set; the server assigns the expiration")
			}
		}
		return runOperation(cmd, "create", createGUID, func(ctx context.Context, c client.Client) (*client.Response, error) {
			if createGUID == "" {
				return c.Create(ctx, createUser)
			}
			return c.CreateWithID(ctx, createGUID, createUser, createExpire)
		})
	},
}

func init() {
	createCmd.Flags().StringVarP(&createGUID, "guid", "g", "", "GUID to create the record under (assigned by the server when omitted)")
	createCmd.Flags().StringVarP(&createUser, "user", "u", cliconfig.GetUser(), "User the record belongs to")
	createCmd.Flags().StringVarP(&createExpire, "expire", "e", "", "Expiration time as epoch seconds, must be in the future")
	rootCmd.AddCommand(createCmd)
}

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/guidtrack/guidctl/internal/history"
	"github.com/guidtrack/guidctl/pkg/cli/internal/output"
	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var historyLimit int

// openHistory opens the invocation log at the configured path.
func openHistory() (*history.Store, *cliconfig.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.History.Path == "" {
		return nil, nil, errors.New("history is not available: no user config directory")
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent guidctl invocations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		limit := cfg.History.Limit
		if cmd.Flags().Changed("limit") {
			limit = historyLimit
		}

		invs, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(invs)
		}

		if len(invs) == 0 {
			fmt.Println("No invocations recorded yet.")
			return nil
		}

		w := output.Table()
		fmt.Fprintln(w, "TIME\tOPERATION\tGUID\tSTATUS\tOUTCOME")
		for _, inv := range invs {
			status := "-"
			if inv.Status != 0 {
				status = strconv.Itoa(inv.Status)
			}
			id := inv.GUID
			if id == "" {
				id = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				inv.CreatedAt.Local().Format("2006-01-02 15:04:05"), inv.Operation, id, status, inv.Outcome)
		}
		return w.Flush()
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded invocations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d invocations\n", n)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", cliconfig.DefaultHistoryLimit, "Maximum number of invocations to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

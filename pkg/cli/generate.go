package cli

import (
	"fmt"

	"github.com/guidtrack/guidctl/pkg/cli/internal/output"
	"github.com/guidtrack/guidctl/pkg/guid"
	"github.com/spf13/cobra"
)

var (
	generateCount  int
	generatePrefix string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate well-formed GUIDs locally",
	Long: `Generate well-formed GUIDs without contacting any endpoint.

With --prefix the first character is forced, which selects the simulated
outcome on mock:// endpoints: 9 yields a server fault, 8 a client fault,
anything else a success.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", generateCount)
		}
		if len(generatePrefix) > 1 {
			return fmt.Errorf("prefix must be a single character, got %q", generatePrefix)
		}

		guids := make([]string, 0, generateCount)
		for i := 0; i < generateCount; i++ {
			if generatePrefix == "" {
				guids = append(guids, guid.New())
				continue
			}
			g, err := guid.NewWithPrefix(generatePrefix[0])
			if err != nil {
				return err
			}
			guids = append(guids, g)
		}

		if jsonOutput {
			return output.JSON(struct {
				GUIDs []string `json:"guids"`
			}{guids})
		}
		for _, g := range guids {
			fmt.Println(g)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of GUIDs to generate")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "", "Force the first character (selects the simulated outcome on mock:// endpoints)")
	rootCmd.AddCommand(generateCmd)
}

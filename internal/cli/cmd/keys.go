package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/hotbarscroll/internal/cli/styles"
	"github.com/bnema/hotbarscroll/internal/ui/input"
)

var keysPlain bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the key names accepted by modifier_key",
	Long: `List every key name accepted in the modifier_key setting.

Names are case-insensitive. Combine a main key with auxiliary keys using +,
main key first:

  modifier_key = "LeftAlt"
  modifier_key = "Q + LeftControl"

Common aliases such as alt, ctrl and shift map to the left-hand keys.`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysPlain, "plain", false, "print one name per line without styling")
}

func runKeys(cmd *cobra.Command, _ []string) error {
	names := input.KeyNames()
	out := cmd.OutOrStdout()

	if keysPlain {
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		k, _ := input.LookupKey(name)
		rows = append(rows, styles.KeyRow{Name: name, Modifier: k.IsModifier()}.ToRow())
	}

	t := styles.NewStyledTable(app.Theme, styles.KeyTableColumns(), rows, 30, len(rows)+3)
	fmt.Fprintln(out, t.View())
	return nil
}

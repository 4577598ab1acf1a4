package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Rshep3087/bankist/ledger"
	"github.com/Rshep3087/bankist/movements"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// MovementView is one movement as printed by the CLI.
type MovementView struct {
	Position int    `json:"position"`
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Display  string `json:"display"`
}

// movementsCmd represents the movements command.
var movementsCmd = &cobra.Command{
	Use:   "movements <username>",
	Short: "List the movements of an account",
	Long: `List the movements of an account, most recent first. Use --sort to order
them by amount the way the sort key does in the terminal UI.`,
	Args: cobra.ExactArgs(1),
	RunE: movementsRun,
}

func init() {
	movementsCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	movementsCmd.Flags().String("sort", "none", "Sort by amount: none, asc or desc")
}

// parseSortOrder maps the --sort flag to a sort order.
func parseSortOrder(s string) (ledger.SortOrder, error) {
	switch s {
	case "", "none":
		return ledger.Unsorted, nil
	case "asc":
		return ledger.Ascending, nil
	case "desc":
		return ledger.Descending, nil
	}

	return ledger.Unsorted, fmt.Errorf("invalid sort %q: must be none, asc or desc", s)
}

// newMovementViews returns ms most recent first, each keeping its position in ms.
func newMovementViews(ms []decimal.Decimal, currency string) []MovementView {
	views := make([]MovementView, 0, len(ms))
	for i := len(ms) - 1; i >= 0; i-- {
		views = append(views, MovementView{
			Position: i + 1,
			Type:     ledger.MovementType(ms[i]),
			Amount:   ms[i].String(),
			Display:  ledger.FormatAmount(ms[i], currency),
		})
	}
	return views
}

func movementsRun(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	sortFlag, err := cmd.Flags().GetString("sort")
	if err != nil {
		return err
	}

	order, err := parseSortOrder(sortFlag)
	if err != nil {
		return err
	}

	a, err := bank.Lookup(args[0])
	if err != nil {
		return err
	}

	ms := ledger.OrderMovements(a.Movements, order)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), newMovementViews(ms, appConfig.Currency))
	case tableOutputFormat:
		return outputMovementsTable(cmd.OutOrStdout(), ms, appConfig.Currency)
	default:
		return errors.New("unsupported output format")
	}
}

func outputMovementsTable(w io.Writer, ms []decimal.Decimal, currency string) error {
	t := createStyledTable("#", "TYPE", "AMOUNT")

	for _, row := range movements.Rows(ms, currency) {
		t.Row(row...)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

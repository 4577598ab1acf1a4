package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Rshep3087/bankist/ledger"
	"github.com/spf13/cobra"
)

// AccountView is how an account is printed by the CLI.
type AccountView struct {
	Owner        string `json:"owner"`
	Username     string `json:"username"`
	Movements    int    `json:"movements"`
	InterestRate string `json:"interest_rate"`
	Balance      string `json:"balance"`
	Income       string `json:"income"`
	Expense      string `json:"expense"`
	Interest     string `json:"interest"`
	Currency     string `json:"currency"`
}

// newAccountView summarizes a. Amounts are formatted for display in currency.
func newAccountView(a *ledger.Account, currency string) AccountView {
	summary := a.Summary()

	return AccountView{
		Owner:        a.Owner,
		Username:     a.Username,
		Movements:    len(a.Movements),
		InterestRate: a.InterestRate.String() + "%",
		Balance:      ledger.FormatAmount(a.Balance(), currency),
		Income:       ledger.FormatAmount(summary.Income, currency),
		Expense:      ledger.FormatAmount(summary.Expense, currency),
		Interest:     ledger.FormatAmount(summary.Interest, currency),
		Currency:     currency,
	}
}

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Account commands",
	Long:  `Commands for inspecting the accounts held by the bank.`,
}

// accountsListCmd represents the accounts list command.
var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Long:  `List every open account with its username and balance.`,
	RunE:  accountsListRun,
}

// accountsSummaryCmd represents the accounts summary command.
var accountsSummaryCmd = &cobra.Command{
	Use:   "summary <username>",
	Short: "Show the summary of one account",
	Long:  `Show balance, income, expense and interest of the account with the given username.`,
	Args:  cobra.ExactArgs(1),
	RunE:  accountsSummaryRun,
}

func init() {
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsSummaryCmd)

	accountsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	accountsSummaryCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func accountsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	views := make([]AccountView, 0, bank.Len())
	for _, a := range bank.Accounts() {
		views = append(views, newAccountView(a, appConfig.Currency))
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), views)
	case tableOutputFormat:
		return outputAccountsTable(cmd.OutOrStdout(), views,
			ledger.FormatAmount(bank.TotalBalance(), appConfig.Currency))
	default:
		return errors.New("unsupported output format")
	}
}

func accountsSummaryRun(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	a, err := bank.Lookup(args[0])
	if err != nil {
		return err
	}

	view := newAccountView(a, appConfig.Currency)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), view)
	case tableOutputFormat:
		return outputAccountSummary(cmd.OutOrStdout(), view)
	default:
		return errors.New("unsupported output format")
	}
}

func outputAccountsTable(w io.Writer, accounts []AccountView, total string) error {
	t := createStyledTable(
		"USERNAME",
		"OWNER",
		"MOVEMENTS",
		"RATE",
		"BALANCE",
	)

	for _, account := range accounts {
		t.Row(
			account.Username,
			account.Owner,
			strconv.Itoa(account.Movements),
			account.InterestRate,
			account.Balance,
		)
	}
	t.Row("", "TOTAL", "", "", total)

	_, err := fmt.Fprintln(w, t)
	return err
}

func outputAccountSummary(w io.Writer, account AccountView) error {
	t := createStyledTable("FIELD", "VALUE")

	t.Row("Owner", account.Owner)
	t.Row("Username", account.Username)
	t.Row("Balance", account.Balance)
	t.Row("In", account.Income)
	t.Row("Out", account.Expense)
	t.Row("Interest", account.Interest)
	t.Row("Interest rate", account.InterestRate)

	_, err := fmt.Fprintln(w, t)
	return err
}

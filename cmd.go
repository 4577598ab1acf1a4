package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Rshep3087/bankist/config"
	"github.com/Rshep3087/bankist/ledger"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global variables for configuration.
var (
	cfgFile      string
	debug        bool
	accountsFile string
	currency     string
	appConfig    config.Config
	bank         *ledger.Bank
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bankist",
	Short: "A terminal bank for the Bankist demo accounts",
	Long: `Bankist is a small in-memory bank. Log in to see an account's balance and
movements, send transfers, request loans or close the account.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		appConfig = loadConfig()

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if appConfig.Debug {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		bank, err = loadBank(appConfig)
		if err != nil {
			return err
		}

		log.Debug("bank ready", "accounts", bank.Len(), "currency", appConfig.Currency)
		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), appConfig, bank)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bankist.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&accountsFile, "accounts-file", "",
		"TOML file with the accounts to load instead of the demo accounts")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", config.DefaultCurrency,
		"ISO 4217 code used to display amounts")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("accounts_file", rootCmd.PersistentFlags().Lookup("accounts-file"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))

	// Bind environment variables
	viper.SetEnvPrefix("BANKIST")

	// Add subcommands
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(movementsCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("bankist")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "bankist"))
		}

		// User home directory
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", "bankist"))
		}

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/bankist")
	}

	// BANKIST_* variables may also come from a .env file
	_ = godotenv.Load()
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
	} else {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	// Update global variables from viper, env vars apply even without a file
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("accounts-file") {
		accountsFile = viper.GetString("accounts_file")
	}
	if !rootCmd.PersistentFlags().Changed("currency") {
		currency = viper.GetString("currency")
	}
}

// loadConfig builds the Config from the resolved globals and the colors
// table of the config file.
func loadConfig() config.Config {
	cfg := config.Config{
		Debug:        debug,
		AccountsFile: accountsFile,
		Currency:     currency,
	}

	if cfg.Currency == "" {
		cfg.Currency = config.DefaultCurrency
	}

	if err := viper.UnmarshalKey("colors", &cfg.Colors); err != nil {
		log.Warn("ignoring invalid colors", "error", err)
	}

	return cfg
}

// loadBank opens the bank from the configured accounts file, or from the
// demo accounts when none is set.
func loadBank(cfg config.Config) (*ledger.Bank, error) {
	var (
		accounts []*ledger.Account
		err      error
	)

	if cfg.AccountsFile != "" {
		log.Debug("loading accounts", "file", cfg.AccountsFile)
		accounts, err = ledger.LoadAccounts(cfg.AccountsFile)
	} else {
		accounts, err = ledger.DefaultAccounts()
	}
	if err != nil {
		return nil, err
	}

	b, err := ledger.NewBank(accounts)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank: %w", err)
	}

	return b, nil
}

// validateOutputFormat returns the --output flag when it names a supported format.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}

	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", fmt.Errorf("invalid output format %q: must be %s or %s",
			outputFormat, tableOutputFormat, jsonOutputFormat)
	}

	return outputFormat, nil
}

// Utility functions for output formatting.
func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

package main

import (
	"context"

	"github.com/Rshep3087/bankist/config"
	"github.com/Rshep3087/bankist/ledger"
	"github.com/Rshep3087/bankist/movements"
	"github.com/Rshep3087/bankist/overview"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type model struct {
	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState

	// bank holds every open account
	bank *ledger.Bank
	// session is nil until someone logs in and is cleared on logout or close
	session  *ledger.Session
	config   config.Config
	currency string

	loginForm    *huh.Form
	transferForm *huh.Form
	loanForm     *huh.Form
	closeForm    *huh.Form

	overview   overview.Model
	movements  movements.Model
	configView config.Model

	// statusMsg is the outcome of the last action
	statusMsg  string
	statusKind statusKind
}

func newModel(cfg config.Config, bank *ledger.Bank) model {
	theme := newTheme(cfg.Colors)

	currency := cfg.Currency
	if currency == "" {
		currency = config.DefaultCurrency
	}

	m := model{
		keys:         initializeKeyMap(),
		help:         createHelpModel(theme),
		theme:        theme,
		styles:       createStyles(theme),
		sessionState: loginState,
		bank:         bank,
		config:       cfg,
		currency:     currency,
		loginForm:    newLoginForm(),
		overview: overview.New(
			overview.WithCurrency(currency),
			overview.WithColors(overview.Colors{
				Income:   string(theme.Income),
				Expense:  string(theme.Expense),
				Interest: string(theme.Success),
				Primary:  string(theme.Primary),
				Muted:    string(theme.Muted),
				Border:   string(theme.Border),
			}),
		),
		movements:  movements.New(movements.Colors{Primary: string(theme.Primary)}),
		configView: config.New(),
	}

	m.movements.SetCurrency(currency)
	m.configView.SetConfig(cfg)

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loginForm.Init(), tea.WindowSize())
}

// rootAction runs the TUI until the user quits.
func rootAction(ctx context.Context, cfg config.Config, bank *ledger.Bank) error {
	if cfg.Debug {
		f, err := tea.LogToFile("bankist.log", "bankist")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}

	p := tea.NewProgram(newModel(cfg, bank), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

func main() {
	Execute()
}

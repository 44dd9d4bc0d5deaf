package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

// accountCmd holds the flags for the 'account' subcommand.
type accountCmd struct {
	id       string
	name     string
	accType  string
	balance  float64
	color    string
	card     string
	expiry   string
	provider string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "create or edit an account" }
func (*accountCmd) Usage() string {
	return `ws account -name <name> [-id <id>] [-t <type>] [-balance <amount>] [-color <color>] [-card <masked>] [-expiry <mm/yy>] [-provider <provider>]

  Upserts an account. Without -id a new account is created; with -id the
  matching account is replaced in place, balance included, so edit the
  balance deliberately.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to edit; empty creates a new one.")
	f.StringVar(&c.name, "name", "", "Display name of the account.")
	f.StringVar(&c.accType, "t", "Checking", "Type of the account (Checking, Savings, Credit, Investment).")
	f.Float64Var(&c.balance, "balance", 0, "Balance of the account (signed; Credit may be negative).")
	f.StringVar(&c.color, "color", "", "Display color.")
	f.StringVar(&c.card, "card", "", "Masked card number.")
	f.StringVar(&c.expiry, "expiry", "", "Card expiry.")
	f.StringVar(&c.provider, "provider", "", "Card provider.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accType, err := wealthsense.ParseAccountType(c.accType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	account := wealthsense.Account{
		ID:         c.id,
		Name:       c.name,
		Type:       accType,
		Balance:    wealthsense.USD(c.balance),
		Color:      c.color,
		CardNumber: c.card,
		Expiry:     c.expiry,
		Provider:   c.provider,
	}
	saved, err := ledger.SaveAccount(account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved account %q (%s) with balance %s\n", saved.Name, saved.ID, saved.Balance)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct {
	account string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and their balances" }
func (*accountsCmd) Usage() string {
	return `ws accounts [-a <account>]

  Lists accounts with their type and balance. With -a, also lists the
  transactions of that account.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account id to show transactions for.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if c.account != "" {
		if err := ledger.SelectAccount(c.account); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| Id | Name | Type | Balance |\n")
	b.WriteString("|---|---|---|---:|\n")
	for a := range ledger.Accounts() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.ID, a.Name, a.Type, a.Balance)
	}
	fmt.Fprintf(&b, "\n**Net worth**: %s\n", ledger.NetWorth())

	if selected := ledger.SelectedAccount(); selected != "" {
		fmt.Fprintf(&b, "\n## Transactions of %s\n\n", selected)
		b.WriteString("| Date | Type | Amount | Category | Description |\n")
		b.WriteString("|---|---|---:|---|---|\n")
		for tx := range ledger.Transactions(wealthsense.ByAccount(selected)) {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", tx.Date, tx.Type, tx.Amount, tx.Category, tx.Description)
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

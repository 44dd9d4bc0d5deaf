package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	date      string
	amount    float64
	category  string
	txType    string
	desc      string
	account   string
	recurring string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction against an account" }
func (*txCmd) Usage() string {
	return `ws tx -a <account> -amount <amount> -t <Income|Expense> [-d <date>] [-c <category>] [-m <description>] [-recurring <frequency>]

  Posts a transaction and updates the account balance: Income adds the
  amount, Expense subtracts it. With -recurring, a recurring template on
  the given schedule (Daily, Weekly, Monthly, Yearly) is registered too.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wealthsense.Today().String(), "Date of the transaction.")
	f.Float64Var(&c.amount, "amount", 0, "Amount of the transaction (non-negative).")
	f.StringVar(&c.category, "c", "Others", "Category of the transaction.")
	f.StringVar(&c.txType, "t", "Expense", "Type of the transaction (Income or Expense).")
	f.StringVar(&c.desc, "m", "", "Description of the transaction.")
	f.StringVar(&c.account, "a", "", "Id of the account the transaction belongs to.")
	f.StringVar(&c.recurring, "recurring", "", "Also register a recurring template with this frequency.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := wealthsense.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	txType, err := wealthsense.ParseTransactionType(c.txType)
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

	tx := wealthsense.NewTransaction(day, wealthsense.USD(c.amount), c.category, txType, c.desc, c.account)

	var rec *wealthsense.RecurringTransaction
	if c.recurring != "" {
		freq, err := wealthsense.ParseFrequency(c.recurring)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.IsRecurring = true
		r := wealthsense.NewRecurring(tx, freq)
		rec = &r
	}

	if err := ledger.AddTransaction(tx, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	account := ledger.Account(tx.AccountID)
	fmt.Printf("Posted %s %s on %q, new balance %s\n", tx.Type, tx.Amount, account.Name, account.Balance)
	return subcommands.ExitSuccess
}

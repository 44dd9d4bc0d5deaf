package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

// addBillCmd holds the flags for the 'add-bill' subcommand.
type addBillCmd struct {
	name     string
	amount   float64
	due      string
	category string
	account  string
}

func (*addBillCmd) Name() string     { return "add-bill" }
func (*addBillCmd) Synopsis() string { return "register an upcoming bill" }
func (*addBillCmd) Usage() string {
	return `ws add-bill -name <name> -amount <amount> -a <account> [-due <date>] [-c <category>]

  Registers a bill against an account. Paying it later posts an Expense
  transaction for the bill amount.
`
}

func (c *addBillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the bill.")
	f.Float64Var(&c.amount, "amount", 0, "Amount due.")
	f.StringVar(&c.due, "due", wealthsense.Today().String(), "Due date.")
	f.StringVar(&c.category, "c", "Utilities", "Category of the bill.")
	f.StringVar(&c.account, "a", "", "Id of the account the bill is paid from.")
}

func (c *addBillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := wealthsense.ParseDate(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	bill := wealthsense.NewBill(c.name, wealthsense.USD(c.amount), due, c.category, c.account)
	if err := ledger.AddBill(bill); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added bill %q (%s) due %s\n", bill.Name, bill.ID, bill.DueDate)
	return subcommands.ExitSuccess
}

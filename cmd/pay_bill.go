package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// payBillCmd holds the flags for the 'pay-bill' subcommand.
type payBillCmd struct {
	id string
}

func (*payBillCmd) Name() string     { return "pay-bill" }
func (*payBillCmd) Synopsis() string { return "pay a bill, posting the matching expense" }
func (*payBillCmd) Usage() string {
	return `ws pay-bill -id <id>

  Posts an Expense transaction for the bill amount against the bill's
  account and marks the bill paid. Paying twice is rejected.
`
}

func (c *payBillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the bill to pay.")
}

func (c *payBillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	tx, err := ledger.MarkBillPaid(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Paid: %s (%s)\n", tx.Description, tx.Amount)
	return subcommands.ExitSuccess
}

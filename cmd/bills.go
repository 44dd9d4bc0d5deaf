package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// billsCmd holds the flags for the 'bills' subcommand.
type billsCmd struct{}

func (*billsCmd) Name() string     { return "bills" }
func (*billsCmd) Synopsis() string { return "list bills and their payment status" }
func (*billsCmd) Usage() string {
	return `ws bills

  Lists every bill with its due date, amount and status.
`
}

func (c *billsCmd) SetFlags(f *flag.FlagSet) {}

func (c *billsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	var b strings.Builder
	b.WriteString("# Bills\n\n")
	b.WriteString("| Id | Name | Due | Amount | Category | Status |\n")
	b.WriteString("|---|---|---|---:|---|---|\n")
	pending := 0
	for bill := range ledger.Bills() {
		status := "Upcoming"
		if bill.IsPaid {
			status = "Paid"
		} else {
			pending++
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n", bill.ID, bill.Name, bill.DueDate, bill.Amount, bill.Category, status)
	}
	fmt.Fprintf(&b, "\n%d pending bills\n", pending)

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type recurringCmd struct{}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "list recurring transaction templates" }
func (*recurringCmd) Usage() string {
	return `ws recurring

  Prints every recurring template with its frequency and next due date.
  Templates are not posted automatically; record the transaction with
  'ws tx' when it happens.
`
}
func (*recurringCmd) SetFlags(_ *flag.FlagSet) {}

func (c *recurringCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	var sb strings.Builder
	sb.WriteString("# Recurring Templates\n\n")
	sb.WriteString("| Id | Description | Category | Amount | Frequency | Next | Active |\n")
	sb.WriteString("|----|-------------|----------|-------:|-----------|------|--------|\n")
	n := 0
	for r := range ledger.Recurring() {
		active := "yes"
		if !r.Active {
			active = "no"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.ID, r.Description, r.Category, r.Amount, r.Frequency, r.NextDate, active)
		n++
	}
	if n == 0 {
		fmt.Println("No recurring templates.")
		return subcommands.ExitSuccess
	}
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}

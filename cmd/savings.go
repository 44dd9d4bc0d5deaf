package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

// savingsCmd holds the flags for the 'savings' subcommand.
type savingsCmd struct {
	id       string
	name     string
	target   float64
	deadline string
	add      float64
}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "create a savings goal or add funds to one" }
func (*savingsCmd) Usage() string {
	return `ws savings -name <name> -target <amount> [-deadline <date>]
ws savings -id <id> -add <amount>

  Without -add, upserts a savings goal. With -add, moves the goal's
  current amount up by the given funds.
`
}

func (c *savingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal to edit or fund.")
	f.StringVar(&c.name, "name", "", "Name of the savings goal.")
	f.Float64Var(&c.target, "target", 0, "Target amount to save.")
	f.StringVar(&c.deadline, "deadline", "", "Deadline for the goal.")
	f.Float64Var(&c.add, "add", 0, "Funds to add to the goal identified by -id.")
}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if c.add != 0 {
		if err := ledger.AddFunds(c.id, wealthsense.USD(c.add)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := saveLedger(store, ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %s to savings goal %s\n", wealthsense.USD(c.add), c.id)
		return subcommands.ExitSuccess
	}

	var deadline wealthsense.Date
	if c.deadline != "" {
		deadline, err = wealthsense.ParseDate(c.deadline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing deadline: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	goal := wealthsense.NewSavingsGoal(c.name, wealthsense.USD(c.target), deadline)
	goal.ID = c.id
	saved, err := ledger.SaveSavingsGoal(goal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved savings goal %q (%s) targeting %s\n", saved.Name, saved.ID, saved.TargetAmount)
	return subcommands.ExitSuccess
}

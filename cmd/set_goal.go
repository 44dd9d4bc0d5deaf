package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

// setGoalCmd holds the flags for the 'set-goal' subcommand.
type setGoalCmd struct {
	category string
	limit    float64
}

func (*setGoalCmd) Name() string     { return "set-goal" }
func (*setGoalCmd) Synopsis() string { return "set a monthly budget for a category" }
func (*setGoalCmd) Usage() string {
	return `ws set-goal -c <category> -limit <amount>

  Creates or replaces the budget for a category.
`
}

func (c *setGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category the budget applies to.")
	f.Float64Var(&c.limit, "limit", 0, "Monthly spending limit.")
}

func (c *setGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	goal := wealthsense.CategoryGoal{Category: c.category, MonthlyLimit: wealthsense.USD(c.limit)}
	if err := ledger.SetCategoryGoal(goal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Budget for %q set to %s per month\n", goal.Category, goal.MonthlyLimit)
	return subcommands.ExitSuccess
}

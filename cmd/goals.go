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

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show budget progress and savings goals" }
func (*goalsCmd) Usage() string {
	return `ws goals

  Shows, for each category budget, the amount spent against the monthly
  limit, and for each savings goal the funded progress.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	var b strings.Builder
	b.WriteString("# Budgets\n\n")
	b.WriteString("| Category | Spent | Limit | Progress |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, status := range ledger.BudgetProgress() {
		marker := ""
		if status.Percent > wealthsense.OverThreshold {
			marker = " ⚠"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s%s |\n", status.Category, status.Spent, status.MonthlyLimit, status.Percent, marker)
	}

	b.WriteString("\n# Savings Goals\n\n")
	b.WriteString("| Id | Name | Saved | Target | Deadline | Progress |\n")
	b.WriteString("|---|---|---:|---:|---|---:|\n")
	for goal := range ledger.SavingsGoals() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n", goal.ID, goal.Name, goal.CurrentAmount, goal.TargetAmount, goal.Deadline, goal.Progress())
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

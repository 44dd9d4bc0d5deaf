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

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print the financial dashboard" }
func (*summaryCmd) Usage() string {
	return `ws summary

  Prints net worth, this month's income and spending, budget progress
  and the spending breakdown by category.
`
}
func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	today := wealthsense.Today()

	var sb strings.Builder
	sb.WriteString("# Summary\n\n")
	fmt.Fprintf(&sb, "Net worth: **%s**\n\n", ledger.NetWorth())
	fmt.Fprintf(&sb, "Income %s: %s\n\n", today.Format("January 2006"), ledger.MonthlyIncome(today))
	fmt.Fprintf(&sb, "Spending %s: %s\n\n", today.Format("January 2006"), ledger.MonthlySpend(today))

	if budgets := ledger.BudgetProgress(); len(budgets) > 0 {
		sb.WriteString("## Budgets\n\n")
		sb.WriteString("| Category | Spent | Limit | Progress |\n")
		sb.WriteString("|----------|------:|------:|---------:|\n")
		for _, b := range budgets {
			mark := ""
			if b.Percent > wealthsense.OverThreshold {
				mark = " ⚠"
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s%s |\n",
				b.Category, b.Spent, b.MonthlyLimit, b.Percent, mark)
		}
		sb.WriteString("\n")
	}

	if totals := ledger.SpendingByCategory(); len(totals) > 0 {
		sb.WriteString("## Spending by Category\n\n")
		sb.WriteString("| Category | Total | Share |\n")
		sb.WriteString("|----------|------:|------:|\n")
		for _, t := range totals {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", t.Category, t.Total, t.Share)
		}
	}

	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}

package wealthsense

import "sort"

// Derived views. All of them are pure recomputations over the current
// collections; nothing here is cached, so nothing can go stale.

// NetWorth is the signed sum of every account balance, Credit negatives
// included.
func (l *Ledger) NetWorth() Money {
	total := USD(0)
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// MonthlySpend sums Expense amounts for transactions falling in the same
// calendar month and year as ref.
func (l *Ledger) MonthlySpend(ref Date) Money {
	return l.monthlyTotal(ref, Expense)
}

// MonthlyIncome sums Income amounts for transactions falling in the same
// calendar month and year as ref.
func (l *Ledger) MonthlyIncome(ref Date) Money {
	return l.monthlyTotal(ref, Income)
}

func (l *Ledger) monthlyTotal(ref Date, typ TransactionType) Money {
	total := USD(0)
	for _, tx := range l.transactions {
		if tx.Type == typ && tx.Date.SameMonth(ref) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// BudgetStatus is the progress of one category budget.
type BudgetStatus struct {
	CategoryGoal
	Spent   Money
	Percent Percent // clamped to [0,100] even when overspent
}

// OverThreshold is the presentation threshold above which callers style a
// budget as at-risk. It is not a data contract.
const OverThreshold Percent = 90

// BudgetProgress computes, for each category goal, the total spent in
// that category and the percentage of the monthly limit it represents,
// clamped at 100.
//
// Spent is summed all-time, not month-scoped, even though the limit is
// labeled monthly. That mismatch is inherited behavior; scoping it to the
// month is a product decision, not a bug fix to slip in here.
func (l *Ledger) BudgetProgress() []BudgetStatus {
	out := make([]BudgetStatus, 0, len(l.categoryGoals))
	for _, goal := range l.categoryGoals {
		spent := USD(0)
		for _, tx := range l.transactions {
			if tx.Type == Expense && tx.Category == goal.Category {
				spent = spent.Add(tx.Amount)
			}
		}
		var percent Percent
		switch {
		case goal.MonthlyLimit.IsPositive():
			percent = spent.Ratio(goal.MonthlyLimit).Clamp()
		case spent.IsPositive():
			percent = 100 // any spend against a zero limit is overspent
		}
		out = append(out, BudgetStatus{CategoryGoal: goal, Spent: spent, Percent: percent})
	}
	return out
}

// CategoryTotal is the all-time Expense total of one category and its
// share of overall spending.
type CategoryTotal struct {
	Category string
	Total    Money
	Share    Percent
}

// SpendingByCategory groups Expense transactions by category, summing
// amounts. The result is sorted by total descending, then by category
// name, for stable output.
func (l *Ledger) SpendingByCategory() []CategoryTotal {
	totals := make(map[string]Money)
	overall := USD(0)
	for _, tx := range l.transactions {
		if tx.Type != Expense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		overall = overall.Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		ct := CategoryTotal{Category: category, Total: total}
		if overall.IsPositive() {
			ct.Share = total.Ratio(overall)
		}
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[j].Total.LessThan(out[i].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ByAccount returns a predicate that filters transactions by owning
// account. An empty id matches every transaction.
func ByAccount(id string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return id == "" || tx.AccountID == id
	}
}

// ByType returns a predicate that filters transactions by type.
func ByType(typ TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.Type == typ
	}
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.Category == category
	}
}

package wealthsense

import "testing"

func aggregateLedger() *Ledger {
	return &Ledger{
		accounts: []Account{
			{ID: "acc_1", Name: "Checking", Type: Checking, Balance: USD(4250.75)},
			{ID: "acc_2", Name: "Savings", Type: Savings, Balance: USD(12400)},
			{ID: "acc_3", Name: "Credit", Type: Credit, Balance: USD(-840.20)},
		},
		transactions: []Transaction{
			{ID: "tx_4", Date: MustParseDate("2024-06-02"), Amount: USD(60), Category: "Dining",
				Type: Expense, AccountID: "acc_1"},
			{ID: "tx_3", Date: MustParseDate("2024-05-18"), Amount: USD(45), Category: "Transport",
				Type: Expense, AccountID: "acc_3"},
			{ID: "tx_2", Date: MustParseDate("2024-05-16"), Amount: USD(85.50), Category: "Dining",
				Type: Expense, AccountID: "acc_1"},
			{ID: "tx_1", Date: MustParseDate("2024-05-15"), Amount: USD(1200), Category: "Salary",
				Type: Income, AccountID: "acc_1"},
		},
	}
}

func TestNetWorth(t *testing.T) {
	l := aggregateLedger()
	// Credit stays negative in the sum, no absolute values.
	if got := l.NetWorth(); !got.Equal(USD(15810.55)) {
		t.Errorf("NetWorth = %s, want $15,810.55", got)
	}
	if got := NewLedger().NetWorth(); !got.IsZero() {
		t.Errorf("empty NetWorth = %s, want zero", got)
	}
}

func TestMonthlyTotals(t *testing.T) {
	l := aggregateLedger()
	may := MustParseDate("2024-05-01")
	june := MustParseDate("2024-06-30")

	if got := l.MonthlySpend(may); !got.Equal(USD(130.50)) {
		t.Errorf("May spend = %s, want $130.50", got)
	}
	if got := l.MonthlyIncome(may); !got.Equal(USD(1200)) {
		t.Errorf("May income = %s, want $1,200.00", got)
	}
	// June has one expense and no income.
	if got := l.MonthlySpend(june); !got.Equal(USD(60)) {
		t.Errorf("June spend = %s, want $60.00", got)
	}
	if got := l.MonthlyIncome(june); !got.IsZero() {
		t.Errorf("June income = %s, want zero", got)
	}
	// A month with no activity at all.
	if got := l.MonthlySpend(MustParseDate("2024-07-01")); !got.IsZero() {
		t.Errorf("July spend = %s, want zero", got)
	}
}

func TestBudgetProgress(t *testing.T) {
	l := aggregateLedger()
	l.categoryGoals = []CategoryGoal{
		{Category: "Dining", MonthlyLimit: USD(300)},
		{Category: "Transport", MonthlyLimit: USD(40)},
		{Category: "Groceries", MonthlyLimit: USD(500)},
	}

	statuses := l.BudgetProgress()
	if len(statuses) != 3 {
		t.Fatalf("got %d statuses, want 3", len(statuses))
	}
	byCategory := make(map[string]BudgetStatus)
	for _, s := range statuses {
		byCategory[s.Category] = s
	}

	// Dining: 85.50 + 60 spent all-time against 300. Both months count.
	dining := byCategory["Dining"]
	if !dining.Spent.Equal(USD(145.50)) {
		t.Errorf("Dining spent = %s, want $145.50", dining.Spent)
	}
	if !dining.Percent.Equal(48.5) {
		t.Errorf("Dining percent = %s, want 48.50%%", dining.Percent)
	}

	// Transport: 45 against 40, overspent, clamped at 100.
	if got := byCategory["Transport"].Percent; got != 100 {
		t.Errorf("Transport percent = %s, want 100%%", got)
	}

	// Groceries: no spend at all.
	groceries := byCategory["Groceries"]
	if !groceries.Spent.IsZero() || groceries.Percent != 0 {
		t.Errorf("Groceries = %s at %s, want zero", groceries.Spent, groceries.Percent)
	}
}

func TestSpendingByCategory(t *testing.T) {
	l := aggregateLedger()
	totals := l.SpendingByCategory()

	// Expenses only, grouped, sorted by total descending.
	want := []struct {
		category string
		total    Money
	}{
		{"Dining", USD(145.50)},
		{"Transport", USD(45)},
	}
	if len(totals) != len(want) {
		t.Fatalf("got %d categories, want %d", len(totals), len(want))
	}
	for i, w := range want {
		if totals[i].Category != w.category || !totals[i].Total.Equal(w.total) {
			t.Errorf("totals[%d] = %s %s, want %s %s", i, totals[i].Category, totals[i].Total, w.category, w.total)
		}
	}
	// Shares sum to the whole.
	var sum Percent
	for _, ct := range totals {
		sum += ct.Share
	}
	if !sum.Equal(100) {
		t.Errorf("shares sum to %s, want 100%%", sum)
	}
}

func TestTransactionFilters(t *testing.T) {
	l := aggregateLedger()

	count := func(filters ...func(Transaction) bool) int {
		n := 0
		for range l.Transactions(filters...) {
			n++
		}
		return n
	}

	if got := count(); got != 4 {
		t.Errorf("no filter = %d, want 4", got)
	}
	if got := count(ByAccount("acc_1")); got != 3 {
		t.Errorf("ByAccount(acc_1) = %d, want 3", got)
	}
	if got := count(ByAccount("")); got != 4 {
		t.Errorf("ByAccount(\"\") = %d, want all 4", got)
	}
	if got := count(ByType(Income)); got != 1 {
		t.Errorf("ByType(Income) = %d, want 1", got)
	}
	if got := count(ByCategory("Dining")); got != 2 {
		t.Errorf("ByCategory(Dining) = %d, want 2", got)
	}
	// Filters are OR-ed: any match accepts.
	if got := count(ByType(Income), ByCategory("Dining")); got != 3 {
		t.Errorf("Income or Dining = %d, want 3", got)
	}
}

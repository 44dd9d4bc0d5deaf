package wealthsense

import (
	"strings"
	"testing"
)

func TestFrequency_Next(t *testing.T) {
	testCases := []struct {
		freq Frequency
		from string
		want string
	}{
		{Daily, "2024-05-31", "2024-06-01"},
		{Weekly, "2024-05-28", "2024-06-04"},
		{Monthly, "2024-05-15", "2024-06-15"},
		{Monthly, "2024-01-31", "2024-03-02"}, // normalized, like time.AddDate
		{Yearly, "2024-02-29", "2025-03-01"},
	}
	for _, tc := range testCases {
		got := tc.freq.Next(MustParseDate(tc.from))
		if got.String() != tc.want {
			t.Errorf("%s.Next(%s) = %s, want %s", tc.freq, tc.from, got, tc.want)
		}
	}
}

func TestTransaction_Signed(t *testing.T) {
	in := NewTransaction(Today(), USD(100), "Salary", Income, "", "acc_1")
	if !in.Signed().Equal(USD(100)) {
		t.Errorf("income Signed = %s, want $100.00", in.Signed())
	}
	out := NewTransaction(Today(), USD(100), "Dining", Expense, "", "acc_1")
	if !out.Signed().Equal(USD(-100)) {
		t.Errorf("expense Signed = %s, want $-100.00", out.Signed())
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := NewTransaction(MustParseDate("2024-05-15"), USD(10), "Dining", Expense, "ok", "acc_1")
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name   string
		mutate func(*Transaction)
		want   string
	}{
		{"negative amount", func(tx *Transaction) { tx.Amount = USD(-1) }, "non-negative"},
		{"bad type", func(tx *Transaction) { tx.Type = "Transfer" }, "unknown transaction type"},
		{"no account", func(tx *Transaction) { tx.AccountID = "" }, "account is missing"},
		{"no date", func(tx *Transaction) { tx.Date = Date{} }, "date is missing"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			err := tx.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestNewRecurring(t *testing.T) {
	tx := NewTransaction(MustParseDate("2024-05-01"), USD(50), "Health", Expense, "Gym", "acc_1")
	rec := NewRecurring(tx, Monthly)

	if rec.ID == tx.ID {
		t.Error("template must get its own id")
	}
	if !strings.HasPrefix(rec.ID, "rec_") {
		t.Errorf("template id = %q, want rec_ prefix", rec.ID)
	}
	if rec.NextDate.String() != "2024-06-01" {
		t.Errorf("NextDate = %s, want 2024-06-01", rec.NextDate)
	}
	if !rec.Active {
		t.Error("new template should be active")
	}
	if err := rec.Validate(); err != nil {
		t.Fatal(err)
	}
}

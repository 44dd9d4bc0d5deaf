package wealthsense

// Categories is the conventional category set offered by the UI; the
// category field itself stays free-form.
var Categories = []string{
	"Salary", "Dining", "Transport", "Rent", "Groceries",
	"Entertainment", "Health", "Shopping", "Utilities", "Others",
}

// DefaultLedger returns the seeded starter ledger: the set a fresh
// install and a full reset both land on.
func DefaultLedger() *Ledger {
	return &Ledger{
		accounts: []Account{
			{ID: "acc_1", Name: "Main Checking", Type: Checking, Balance: USD(4250.75),
				Color: "indigo", CardNumber: "**** **** **** 4291", Expiry: "09/26", Provider: "Visa"},
			{ID: "acc_2", Name: "Wealth Savings", Type: Savings, Balance: USD(12400.00),
				Color: "emerald", CardNumber: "**** **** **** 8820", Expiry: "12/28", Provider: "Mastercard"},
			{ID: "acc_3", Name: "Platinum Credit", Type: Credit, Balance: USD(-840.20),
				Color: "slate", CardNumber: "**** **** **** 1105", Expiry: "04/25", Provider: "Amex"},
		},
		transactions: []Transaction{
			{ID: "tx_3", Date: MustParseDate("2024-05-18"), Amount: USD(45.00), Category: "Transport",
				Type: Expense, Description: "Uber Ride", AccountID: "acc_3"},
			{ID: "tx_2", Date: MustParseDate("2024-05-16"), Amount: USD(85.50), Category: "Dining",
				Type: Expense, Description: "The Italian Bistro", AccountID: "acc_1"},
			{ID: "tx_1", Date: MustParseDate("2024-05-15"), Amount: USD(1200.00), Category: "Salary",
				Type: Income, Description: "Monthly Salary Deposit", AccountID: "acc_1"},
		},
		bills: []Bill{
			{ID: "bill_1", Name: "Electric Bill", Amount: USD(120.50), DueDate: MustParseDate("2024-06-05"),
				Category: "Utilities", AccountID: "acc_1"},
			{ID: "bill_2", Name: "Netflix Subscription", Amount: USD(15.99), DueDate: MustParseDate("2024-06-10"),
				Category: "Entertainment", AccountID: "acc_3"},
		},
		recurring: []RecurringTransaction{
			{ID: "rec_1", Description: "Gym Membership", Amount: USD(50.00), Category: "Health",
				AccountID: "acc_1", Frequency: Monthly, Type: Expense,
				NextDate: MustParseDate("2024-06-01"), Active: true},
		},
		categoryGoals: []CategoryGoal{
			{Category: "Groceries", MonthlyLimit: USD(500)},
			{Category: "Dining", MonthlyLimit: USD(300)},
			{Category: "Entertainment", MonthlyLimit: USD(200)},
		},
		savingsGoals: []SavingsGoal{
			{ID: "sg_1", Name: "New Car", TargetAmount: USD(25000), CurrentAmount: USD(8500),
				Deadline: MustParseDate("2025-12-31"), Color: "indigo"},
		},
	}
}

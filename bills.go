package wealthsense

import (
	"errors"
	"fmt"
)

// Bill is an upcoming payment tied to an account.
//
// Paying a bill is one-way: it posts an Expense transaction for the bill
// amount against the bill's account and flips IsPaid. A paid bill never
// goes back to unpaid.
type Bill struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    Money  `json:"amount"`
	DueDate   Date   `json:"dueDate"`
	Category  string `json:"category"`
	AccountID string `json:"accountId"`
	IsPaid    bool   `json:"isPaid"`
}

// NewBill creates a bill with a fresh id.
func NewBill(name string, amount Money, due Date, category, accountID string) Bill {
	return Bill{
		ID:        newID("bill"),
		Name:      name,
		Amount:    amount,
		DueDate:   due,
		Category:  category,
		AccountID: accountID,
	}
}

// Validate checks the bill fields.
func (b Bill) Validate() error {
	if b.Name == "" {
		return errors.New("bill name is missing")
	}
	if b.Amount.IsNegative() {
		return fmt.Errorf("bill amount must be non-negative, got %s", b.Amount)
	}
	if b.AccountID == "" {
		return errors.New("bill account is missing")
	}
	return nil
}

package wealthsense

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TransactionType distinguishes money flowing in from money flowing out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Frequency is the schedule of a recurring transaction template.
type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("unknown frequency: %q", s)
	}
}

// Next returns the occurrence following d on this schedule.
func (f Frequency) Next(d Date) Date {
	switch f {
	case Daily:
		return d.Add(1)
	case Weekly:
		return d.Add(7)
	case Monthly:
		return d.AddMonth(1)
	case Yearly:
		return d.AddMonth(12)
	default:
		panic("unknown frequency")
	}
}

// newID mints an entity id with a readable prefix.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// Transaction is a single posted movement of money against an account.
//
// Amount is a non-negative magnitude; Type determines the sign of its
// effect on the account balance. Transactions are immutable once posted:
// they are only removed by the cascade of deleting their account.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	AccountID   string          `json:"accountId"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
}

// NewTransaction creates a transaction with a fresh id. A zero day means today.
func NewTransaction(day Date, amount Money, category string, typ TransactionType, description, accountID string) Transaction {
	if day.IsZero() {
		day = Today()
	}
	return Transaction{
		ID:          newID("tx"),
		Date:        day,
		Amount:      amount,
		Category:    category,
		Type:        typ,
		Description: description,
		AccountID:   accountID,
	}
}

// Signed returns the transaction's effect on its account balance:
// +Amount for Income, -Amount for Expense.
func (t Transaction) Signed() Money {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Validate checks the transaction fields.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must be non-negative, got %s", t.Amount)
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if t.AccountID == "" {
		return errors.New("transaction account is missing")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	return nil
}

// RecurringTransaction is a template for a repeating movement.
//
// The engine stores, lists and backs up templates; it does not advance
// NextDate or auto-post occurrences. That scheduler is a future feature.
type RecurringTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	AccountID   string          `json:"accountId"`
	Frequency   Frequency       `json:"frequency"`
	Type        TransactionType `json:"type"`
	NextDate    Date            `json:"nextDate"`
	Active      bool            `json:"active"`
}

// NewRecurring derives a recurring template from a just-posted transaction.
func NewRecurring(tx Transaction, freq Frequency) RecurringTransaction {
	return RecurringTransaction{
		ID:          newID("rec"),
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
		AccountID:   tx.AccountID,
		Frequency:   freq,
		Type:        tx.Type,
		NextDate:    freq.Next(tx.Date),
		Active:      true,
	}
}

// Validate checks the recurring template fields.
func (r RecurringTransaction) Validate() error {
	if r.Amount.IsNegative() {
		return fmt.Errorf("recurring amount must be non-negative, got %s", r.Amount)
	}
	if _, err := ParseFrequency(string(r.Frequency)); err != nil {
		return err
	}
	if _, err := ParseTransactionType(string(r.Type)); err != nil {
		return err
	}
	if r.AccountID == "" {
		return errors.New("recurring account is missing")
	}
	return nil
}

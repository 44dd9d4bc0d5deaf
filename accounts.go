package wealthsense

import (
	"errors"
	"fmt"
)

// AccountType classifies an account.
type AccountType string

const (
	Checking   AccountType = "Checking"
	Savings    AccountType = "Savings"
	Credit     AccountType = "Credit"
	Investment AccountType = "Investment"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, Credit, Investment:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is a single bank account, card or investment pot.
//
// Balance is signed: Credit accounts commonly carry a negative balance.
// Color, CardNumber, Expiry and Provider are display metadata with no
// bearing on any invariant.
type Account struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       AccountType `json:"type"`
	Balance    Money       `json:"balance"`
	Color      string      `json:"color,omitempty"`
	CardNumber string      `json:"cardNumber,omitempty"`
	Expiry     string      `json:"expiry,omitempty"`
	Provider   string      `json:"provider,omitempty"`
}

// NewAccount creates an account with a fresh id.
func NewAccount(name string, typ AccountType, balance Money) Account {
	return Account{
		ID:      newID("acc"),
		Name:    name,
		Type:    typ,
		Balance: balance,
	}
}

// Validate checks the account fields.
func (a Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name is missing")
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	return nil
}

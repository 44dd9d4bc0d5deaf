package wealthsense

import (
	"errors"
	"fmt"
	"iter"
	"log"
)

// Sentinel errors for the failure taxonomy. Every failure leaves the
// ledger in its prior consistent state.
var (
	// ErrUnknownAccount reports a transaction or bill referencing an
	// account id that does not resolve.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrAlreadyPaid reports an attempt to pay a bill twice.
	ErrAlreadyPaid = errors.New("bill is already paid")
)

// Ledger holds every collection of the finance tracker. It is the single
// owner of all entities; aggregates are recomputed from it, never stored.
//
// Transactions are kept newest-first by insertion. There is exactly one
// logical writer at a time, so no locking.
type Ledger struct {
	accounts      []Account
	transactions  []Transaction
	bills         []Bill
	recurring     []RecurringTransaction
	categoryGoals []CategoryGoal
	savingsGoals  []SavingsGoal

	pin      string // empty means the gate is open
	selected string // active account filter, empty means all
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

// Accounts iterates over the accounts in display order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Transactions returns an iterator over transactions, newest first.
// With no filters every transaction is yielded; with filters, a
// transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Bills iterates over the bills.
func (l *Ledger) Bills() iter.Seq[Bill] {
	return func(yield func(Bill) bool) {
		for _, b := range l.bills {
			if !yield(b) {
				return
			}
		}
	}
}

// Recurring iterates over the recurring templates.
func (l *Ledger) Recurring() iter.Seq[RecurringTransaction] {
	return func(yield func(RecurringTransaction) bool) {
		for _, r := range l.recurring {
			if !yield(r) {
				return
			}
		}
	}
}

// CategoryGoals iterates over the category budgets.
func (l *Ledger) CategoryGoals() iter.Seq[CategoryGoal] {
	return func(yield func(CategoryGoal) bool) {
		for _, g := range l.categoryGoals {
			if !yield(g) {
				return
			}
		}
	}
}

// SavingsGoals iterates over the savings goals.
func (l *Ledger) SavingsGoals() iter.Seq[SavingsGoal] {
	return func(yield func(SavingsGoal) bool) {
		for _, g := range l.savingsGoals {
			if !yield(g) {
				return
			}
		}
	}
}

// AddTransaction validates and posts a transaction: it is prepended to the
// collection (newest first) and the referenced account's balance moves by
// the signed amount, exactly once. An optional recurring template created
// alongside it is stored too. Fails without mutation when the account id
// does not resolve.
func (l *Ledger) AddTransaction(tx Transaction, rec *RecurringTransaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	if rec != nil {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("invalid recurring template: %w", err)
		}
	}
	account := l.Account(tx.AccountID)
	if account == nil {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, tx.AccountID)
	}

	l.transactions = append([]Transaction{tx}, l.transactions...)
	account.Balance = account.Balance.Add(tx.Signed())
	if rec != nil {
		l.recurring = append([]RecurringTransaction{*rec}, l.recurring...)
	}
	log.Printf("%v: posted %s %s %q on account %q, balance %s", tx.Date, tx.Type, tx.Amount, tx.Description, account.Name, account.Balance)
	return nil
}

// MarkBillPaid posts an Expense transaction for the bill amount against
// the bill's account, then flips IsPaid. Paying an already-paid bill is
// rejected with ErrAlreadyPaid so the balance can never be decremented
// twice. It returns the posted transaction.
func (l *Ledger) MarkBillPaid(billID string) (Transaction, error) {
	var bill *Bill
	for i := range l.bills {
		if l.bills[i].ID == billID {
			bill = &l.bills[i]
			break
		}
	}
	if bill == nil {
		return Transaction{}, fmt.Errorf("unknown bill %q", billID)
	}
	if bill.IsPaid {
		return Transaction{}, fmt.Errorf("%w: %q", ErrAlreadyPaid, bill.Name)
	}

	tx := NewTransaction(Today(), bill.Amount, bill.Category, Expense, "Payment: "+bill.Name, bill.AccountID)
	if err := l.AddTransaction(tx, nil); err != nil {
		return Transaction{}, err
	}
	bill.IsPaid = true
	return tx, nil
}

// AddBill validates and stores a new bill. The referenced account must exist.
func (l *Ledger) AddBill(b Bill) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid bill: %w", err)
	}
	if l.Account(b.AccountID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, b.AccountID)
	}
	l.bills = append(l.bills, b)
	return nil
}

// SaveAccount upserts an account by id. An existing account is replaced in
// place, balance included; the caller owns not corrupting the balance on
// edit. An account without an id gets a fresh one and is inserted.
func (l *Ledger) SaveAccount(a Account) (Account, error) {
	if a.ID == "" {
		a.ID = newID("acc")
	}
	if err := a.Validate(); err != nil {
		return Account{}, fmt.Errorf("invalid account: %w", err)
	}
	for i := range l.accounts {
		if l.accounts[i].ID == a.ID {
			l.accounts[i] = a
			log.Printf("updated account %q", a.Name)
			return a, nil
		}
	}
	l.accounts = append(l.accounts, a)
	log.Printf("created account %q", a.Name)
	return a, nil
}

// DeleteAccount removes the account and cascades to every transaction
// referencing it, so no dangling account ids remain. If the deleted
// account was the active filter selection, the filter is cleared.
func (l *Ledger) DeleteAccount(id string) error {
	idx := -1
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, id)
	}

	l.accounts = append(l.accounts[:idx], l.accounts[idx+1:]...)
	kept := l.transactions[:0]
	for _, tx := range l.transactions {
		if tx.AccountID != id {
			kept = append(kept, tx)
		}
	}
	l.transactions = kept
	if l.selected == id {
		l.selected = ""
	}
	log.Printf("deleted account %q and its transactions", id)
	return nil
}

// SelectAccount sets the active account filter. Empty clears it.
func (l *Ledger) SelectAccount(id string) error {
	if id != "" && l.Account(id) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, id)
	}
	l.selected = id
	return nil
}

// SelectedAccount returns the active account filter, empty for all.
func (l *Ledger) SelectedAccount() string { return l.selected }

// SetCategoryGoal upserts a budget by category.
func (l *Ledger) SetCategoryGoal(g CategoryGoal) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}
	for i := range l.categoryGoals {
		if l.categoryGoals[i].Category == g.Category {
			l.categoryGoals[i] = g
			return nil
		}
	}
	l.categoryGoals = append(l.categoryGoals, g)
	return nil
}

// SaveSavingsGoal upserts a savings goal by id.
func (l *Ledger) SaveSavingsGoal(s SavingsGoal) (SavingsGoal, error) {
	if s.ID == "" {
		s.ID = newID("sg")
	}
	if err := s.Validate(); err != nil {
		return SavingsGoal{}, fmt.Errorf("invalid savings goal: %w", err)
	}
	for i := range l.savingsGoals {
		if l.savingsGoals[i].ID == s.ID {
			l.savingsGoals[i] = s
			return s, nil
		}
	}
	l.savingsGoals = append(l.savingsGoals, s)
	return s, nil
}

// AddFunds moves a savings goal's current amount up by a positive amount.
func (l *Ledger) AddFunds(goalID string, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("add funds amount must be positive, got %s", amount)
	}
	for i := range l.savingsGoals {
		if l.savingsGoals[i].ID == goalID {
			l.savingsGoals[i].CurrentAmount = l.savingsGoals[i].CurrentAmount.Add(amount)
			return nil
		}
	}
	return fmt.Errorf("unknown savings goal %q", goalID)
}

// PIN returns the stored access secret, empty when the gate is open.
func (l *Ledger) PIN() string { return l.pin }

// setPIN stores the access secret without format checks; format policy
// lives in the Gate.
func (l *Ledger) setPIN(pin string) { l.pin = pin }

// ResetAll discards every collection and the PIN, returning the ledger to
// the seeded default state. Irreversible without a prior backup.
func (l *Ledger) ResetAll() {
	*l = *DefaultLedger()
	log.Printf("ledger reset to defaults")
}

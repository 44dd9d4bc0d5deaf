package wealthsense

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// BackupVersion identifies the backup document schema.
const BackupVersion = "1.0"

// ErrFormat reports a malformed or incomplete backup document. An import
// failing with ErrFormat performs no mutation at all.
var ErrFormat = errors.New("invalid backup document")

// BackupDocument is the portable whole-system snapshot: every collection,
// the PIN if set, and an export timestamp. It is the only durable
// representation of the ledger outside the local store.
//
// accounts and transactions are mandatory on import; every other field is
// optional and independently defaulted to the current value when absent.
type BackupDocument struct {
	Version       string                 `json:"version"`
	ExportDate    string                 `json:"exportDate"`
	Accounts      []Account              `json:"accounts"`
	Transactions  []Transaction          `json:"transactions"`
	Bills         []Bill                 `json:"bills"`
	Recurring     []RecurringTransaction `json:"recurring"`
	CategoryGoals []CategoryGoal         `json:"categoryGoals"`
	SavingsGoals  []SavingsGoal          `json:"savingsGoals"`
	PIN           *string                `json:"pin,omitempty"`
}

// Snapshot captures the ledger into a backup document stamped now.
func (l *Ledger) Snapshot() *BackupDocument {
	doc := &BackupDocument{
		Version:       BackupVersion,
		ExportDate:    time.Now().UTC().Format(time.RFC3339),
		Accounts:      append([]Account{}, l.accounts...),
		Transactions:  append([]Transaction{}, l.transactions...),
		Bills:         append([]Bill{}, l.bills...),
		Recurring:     append([]RecurringTransaction{}, l.recurring...),
		CategoryGoals: append([]CategoryGoal{}, l.categoryGoals...),
		SavingsGoals:  append([]SavingsGoal{}, l.savingsGoals...),
	}
	if l.pin != "" {
		pin := l.pin
		doc.PIN = &pin
	}
	return doc
}

// MarshalJSON implements the json.Marshaler interface for BackupDocument,
// keeping the document keys in schema order and omitting an unset PIN.
func (d *BackupDocument) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", d.Version)
	w.Append("exportDate", d.ExportDate)
	w.Append("accounts", d.Accounts)
	w.Append("transactions", d.Transactions)
	w.Append("bills", d.Bills)
	w.Append("recurring", d.Recurring)
	w.Append("categoryGoals", d.CategoryGoals)
	w.Append("savingsGoals", d.SavingsGoals)
	w.Optional("pin", d.PIN)
	return w.MarshalJSON()
}

// Export writes the whole ledger as one indented JSON backup document.
func (l *Ledger) Export(w io.Writer) error {
	data, err := json.Marshal(l.Snapshot())
	if err != nil {
		return fmt.Errorf("cannot marshal backup document: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("cannot format backup document: %w", err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("cannot write backup document: %w", err)
	}
	return nil
}

// DecodeBackup reads and validates a backup document from untrusted
// input. The raw document is first probed for the mandatory accounts and
// transactions collections, then strictly decoded and shape-checked
// entity by entity. Any failure is an ErrFormat; the caller's ledger is
// untouched until a valid document is applied with Restore.
func DecodeBackup(r io.Reader) (*BackupDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup document: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %w", ErrFormat, err)
	}
	// Probe the untyped document before trusting any of its field types.
	for _, required := range []string{"$.accounts", "$.transactions"} {
		if _, err := jsonpath.Get(required, raw); err != nil {
			return nil, fmt.Errorf("%w: missing %s collection", ErrFormat, required[2:])
		}
	}

	var doc BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if doc.Accounts == nil || doc.Transactions == nil {
		// Present but null, e.g. "accounts": null.
		return nil, fmt.Errorf("%w: accounts and transactions must be arrays", ErrFormat)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return &doc, nil
}

// validate shape-checks every entity and the internal references of the
// document.
func (d *BackupDocument) validate() error {
	ids := make(map[string]struct{}, len(d.Accounts))
	for _, a := range d.Accounts {
		if a.ID == "" {
			return fmt.Errorf("account %q has no id", a.Name)
		}
		if err := a.Validate(); err != nil {
			return err
		}
		ids[a.ID] = struct{}{}
	}
	for _, tx := range d.Transactions {
		if err := tx.Validate(); err != nil {
			return err
		}
		if _, ok := ids[tx.AccountID]; !ok {
			return fmt.Errorf("transaction %q references %w %q", tx.ID, ErrUnknownAccount, tx.AccountID)
		}
	}
	for _, b := range d.Bills {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	for _, rec := range d.Recurring {
		if err := rec.Validate(); err != nil {
			return err
		}
	}
	for _, g := range d.CategoryGoals {
		if err := g.Validate(); err != nil {
			return err
		}
	}
	for _, s := range d.SavingsGoals {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if d.PIN != nil && *d.PIN != "" {
		if err := ValidatePIN(*d.PIN); err != nil {
			return err
		}
	}
	return nil
}

// Restore replaces the ledger's collections with the document's values.
// Accounts and transactions always overwrite; each optional collection
// overwrites only when present in the document, independently of the
// others. A PIN carried by the document replaces the stored PIN, but the
// caller's gate is not re-locked mid-session.
func (l *Ledger) Restore(doc *BackupDocument) {
	l.accounts = append([]Account{}, doc.Accounts...)
	l.transactions = append([]Transaction{}, doc.Transactions...)
	if doc.Bills != nil {
		l.bills = append([]Bill{}, doc.Bills...)
	}
	if doc.Recurring != nil {
		l.recurring = append([]RecurringTransaction{}, doc.Recurring...)
	}
	if doc.CategoryGoals != nil {
		l.categoryGoals = append([]CategoryGoal{}, doc.CategoryGoals...)
	}
	if doc.SavingsGoals != nil {
		l.savingsGoals = append([]SavingsGoal{}, doc.SavingsGoals...)
	}
	if doc.PIN != nil {
		l.pin = *doc.PIN
	}
	l.selected = ""
	log.Printf("restored backup from %s: %d accounts, %d transactions", doc.ExportDate, len(doc.Accounts), len(doc.Transactions))
}

package wealthsense

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/wealthsense/wealthsense/kv"
)

// Storage keys, one per collection. The PIN key is absent when no PIN is
// set; every other key always exists once the ledger has been saved.
const (
	keyAccounts      = "accounts"
	keyTransactions  = "transactions"
	keyBills         = "bills"
	keyRecurring     = "recurring"
	keyCategoryGoals = "category_goals"
	keySavingsGoals  = "savings_goals"
	keyPIN           = "pin"
)

// LoadLedger reads the whole ledger from the store. A store with no
// accounts key is a first run: the seeded default ledger is returned
// (but not yet saved).
func LoadLedger(store *kv.Store) (*Ledger, error) {
	accounts, exists, err := store.Get(keyAccounts)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Printf("no ledger found in store, starting from defaults")
		return DefaultLedger(), nil
	}

	l := NewLedger()
	if err := json.Unmarshal(accounts, &l.accounts); err != nil {
		return nil, fmt.Errorf("could not decode stored %s: %w", keyAccounts, err)
	}
	if err := loadKey(store, keyTransactions, &l.transactions); err != nil {
		return nil, err
	}
	if err := loadKey(store, keyBills, &l.bills); err != nil {
		return nil, err
	}
	if err := loadKey(store, keyRecurring, &l.recurring); err != nil {
		return nil, err
	}
	if err := loadKey(store, keyCategoryGoals, &l.categoryGoals); err != nil {
		return nil, err
	}
	if err := loadKey(store, keySavingsGoals, &l.savingsGoals); err != nil {
		return nil, err
	}

	pin, exists, err := store.Get(keyPIN)
	if err != nil {
		return nil, err
	}
	if exists {
		l.pin = string(pin)
	}
	return l, nil
}

// loadKey decodes one collection; an absent key leaves the target empty.
func loadKey(store *kv.Store, key string, target any) error {
	value, exists, err := store.Get(key)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := json.Unmarshal(value, target); err != nil {
		return fmt.Errorf("could not decode stored %s: %w", key, err)
	}
	return nil
}

// SaveLedger writes every collection back to the store. The PIN key is
// written when a PIN is set and deleted otherwise, so that lock state can
// be recomputed from key presence alone at next load.
func SaveLedger(store *kv.Store, l *Ledger) error {
	collections := []struct {
		key   string
		value any
	}{
		{keyAccounts, l.accounts},
		{keyTransactions, l.transactions},
		{keyBills, l.bills},
		{keyRecurring, l.recurring},
		{keyCategoryGoals, l.categoryGoals},
		{keySavingsGoals, l.savingsGoals},
	}
	for _, c := range collections {
		data, err := json.Marshal(emptyIfNil(c.value))
		if err != nil {
			return fmt.Errorf("could not encode %s: %w", c.key, err)
		}
		if err := store.Put(c.key, data); err != nil {
			return err
		}
	}

	if l.pin == "" {
		return store.Delete(keyPIN)
	}
	return store.Put(keyPIN, []byte(l.pin))
}

// emptyIfNil keeps stored collections as JSON arrays, never null.
func emptyIfNil(v any) any {
	switch t := v.(type) {
	case []Account:
		if t == nil {
			return []Account{}
		}
	case []Transaction:
		if t == nil {
			return []Transaction{}
		}
	case []Bill:
		if t == nil {
			return []Bill{}
		}
	case []RecurringTransaction:
		if t == nil {
			return []RecurringTransaction{}
		}
	case []CategoryGoal:
		if t == nil {
			return []CategoryGoal{}
		}
	case []SavingsGoal:
		if t == nil {
			return []SavingsGoal{}
		}
	}
	return v
}

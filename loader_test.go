package wealthsense

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/wealthsense/wealthsense/kv"
)

func openTestStore(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadLedger_FirstRun(t *testing.T) {
	store := openTestStore(t)

	l, err := LoadLedger(store)
	if err != nil {
		t.Fatal(err)
	}
	// A fresh store yields the seeded defaults.
	want := DefaultLedger()
	if got := len(slices.Collect(l.Accounts())); got != len(slices.Collect(want.Accounts())) {
		t.Errorf("account count = %d", got)
	}
	if !l.NetWorth().Equal(want.NetWorth()) {
		t.Errorf("net worth = %s, want %s", l.NetWorth(), want.NetWorth())
	}
	if l.PIN() != "" {
		t.Errorf("fresh ledger has PIN %q", l.PIN())
	}

	// The defaults are not persisted until the first save.
	keys, err := store.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("first run wrote keys %v", keys)
	}
}

func TestLoadLedger_CorruptAccounts(t *testing.T) {
	store := openTestStore(t)

	// A present but unreadable accounts value is an error, not a silent
	// fall back to defaults.
	if err := store.Put("accounts", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLedger(store); err == nil {
		t.Fatal("LoadLedger succeeded on a corrupt accounts value")
	}
}

func TestSaveLoadLedger_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	l := DefaultLedger()
	l.setPIN("1234")
	tx := NewTransaction(MustParseDate("2024-05-20"), USD(42), "Groceries", Expense, "Market", "acc_1")
	if err := l.AddTransaction(tx, nil); err != nil {
		t.Fatal(err)
	}
	if err := SaveLedger(store, l); err != nil {
		t.Fatal(err)
	}

	back, err := LoadLedger(store)
	if err != nil {
		t.Fatal(err)
	}
	if !back.NetWorth().Equal(l.NetWorth()) {
		t.Errorf("net worth = %s, want %s", back.NetWorth(), l.NetWorth())
	}
	got := slices.Collect(back.Transactions())
	want := slices.Collect(l.Transactions())
	if len(got) != len(want) {
		t.Fatalf("transaction count = %d, want %d", len(got), len(want))
	}
	if got[0].ID != tx.ID {
		t.Errorf("newest transaction = %q, want %q", got[0].ID, tx.ID)
	}
	if back.PIN() != "1234" {
		t.Errorf("PIN = %q, want 1234", back.PIN())
	}
	if got := len(slices.Collect(back.Bills())); got != len(slices.Collect(l.Bills())) {
		t.Errorf("bill count = %d", got)
	}
	if got := len(slices.Collect(back.Recurring())); got != len(slices.Collect(l.Recurring())) {
		t.Errorf("recurring count = %d", got)
	}
}

func TestSaveLedger_PINKeyTracksState(t *testing.T) {
	store := openTestStore(t)
	l := DefaultLedger()

	l.setPIN("1234")
	if err := SaveLedger(store, l); err != nil {
		t.Fatal(err)
	}
	if _, exists, _ := store.Get("pin"); !exists {
		t.Error("pin key absent with a PIN set")
	}

	// Clearing the PIN removes the key, so the next load starts unlocked.
	l.setPIN("")
	if err := SaveLedger(store, l); err != nil {
		t.Fatal(err)
	}
	if _, exists, _ := store.Get("pin"); exists {
		t.Error("pin key still present with no PIN")
	}
	back, err := LoadLedger(store)
	if err != nil {
		t.Fatal(err)
	}
	if NewGate(back).Locked() {
		t.Error("gate locked after the PIN was cleared and saved")
	}
}

func TestSaveLedger_EmptyCollectionsStayArrays(t *testing.T) {
	store := openTestStore(t)

	// A brand new ledger has nil slices; they must persist as [] and load
	// back without tripping the decoder.
	if err := SaveLedger(store, NewLedger()); err != nil {
		t.Fatal(err)
	}
	value, exists, err := store.Get("accounts")
	if err != nil || !exists {
		t.Fatalf("accounts key missing, err=%v", err)
	}
	if string(value) != "[]" {
		t.Errorf("accounts stored as %s, want []", value)
	}

	back, err := LoadLedger(store)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(slices.Collect(back.Accounts())); got != 0 {
		t.Errorf("account count = %d, want 0", got)
	}
}

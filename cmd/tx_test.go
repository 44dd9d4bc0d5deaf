package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
	"github.com/wealthsense/wealthsense/kv"
)

// useTempDB points the global -db flag at a fresh database for one test.
func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	oldDB := dbPath
	dbPath = &path
	t.Cleanup(func() { dbPath = oldDB })
	return path
}

func runCmd(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("flag parse: %v", err)
	}
	return c.Execute(context.Background(), f)
}

func TestTxCmd(t *testing.T) {
	useTempDB(t)

	// The first run seeds the default accounts; acc_1 starts at 4250.75.
	status := runCmd(t, &txCmd{}, "-a", "acc_1", "-amount", "85.50", "-c", "Dining", "-m", "Bistro")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute = %v, want ExitSuccess", status)
	}

	ledger, store, err := openLedger()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if got := ledger.Account("acc_1").Balance; !got.Equal(wealthsense.USD(4165.25)) {
		t.Errorf("balance = %s, want $4,165.25", got)
	}
}

func TestTxCmd_BadInput(t *testing.T) {
	useTempDB(t)

	if status := runCmd(t, &txCmd{}, "-a", "acc_1", "-amount", "10", "-d", "not-a-date"); status != subcommands.ExitUsageError {
		t.Errorf("bad date = %v, want ExitUsageError", status)
	}
	if status := runCmd(t, &txCmd{}, "-a", "acc_1", "-amount", "10", "-t", "Transfer"); status != subcommands.ExitUsageError {
		t.Errorf("bad type = %v, want ExitUsageError", status)
	}
	if status := runCmd(t, &txCmd{}, "-a", "acc_missing", "-amount", "10"); status != subcommands.ExitFailure {
		t.Errorf("unknown account = %v, want ExitFailure", status)
	}
}

func TestTxCmd_Recurring(t *testing.T) {
	useTempDB(t)

	status := runCmd(t, &txCmd{},
		"-a", "acc_1", "-amount", "50", "-c", "Health", "-m", "Gym", "-d", "2024-05-01", "-recurring", "Monthly")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute = %v, want ExitSuccess", status)
	}

	ledger, store, err := openLedger()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	found := false
	for r := range ledger.Recurring() {
		if r.Description == "Gym" && r.Frequency == wealthsense.Monthly {
			found = true
			if r.NextDate.String() != "2024-06-01" {
				t.Errorf("NextDate = %s, want 2024-06-01", r.NextDate)
			}
		}
	}
	if !found {
		t.Error("recurring template not stored")
	}
}

func TestOpenLedger_EnforcesGate(t *testing.T) {
	path := useTempDB(t)

	// Seed a store with a PIN-protected ledger.
	store, err := kv.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	ledger, err := wealthsense.LoadLedger(store)
	if err != nil {
		t.Fatal(err)
	}
	gate := wealthsense.NewGate(ledger)
	if err := gate.SetPIN("1234"); err != nil {
		t.Fatal(err)
	}
	if err := wealthsense.SaveLedger(store, ledger); err != nil {
		t.Fatal(err)
	}
	store.Close()

	oldPin := pinArg
	t.Cleanup(func() { pinArg = oldPin })

	wrong := "9999"
	pinArg = &wrong
	if _, _, err := openLedger(); err == nil {
		t.Error("openLedger succeeded with the wrong PIN")
	}

	right := "1234"
	pinArg = &right
	_, s, err := openLedger()
	if err != nil {
		t.Fatalf("openLedger with the right PIN: %v", err)
	}
	s.Close()
}

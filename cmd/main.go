// Package cmd implements the CLI application to manage a wealthsense ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
	"github.com/wealthsense/wealthsense/kv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&txCmd{}, "ledger")
	c.Register(&accountsCmd{}, "ledger")
	c.Register(&accountCmd{}, "ledger")
	c.Register(&deleteAccountCmd{}, "ledger")
	c.Register(&recurringCmd{}, "ledger")

	c.Register(&billsCmd{}, "bills")
	c.Register(&addBillCmd{}, "bills")
	c.Register(&payBillCmd{}, "bills")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&setGoalCmd{}, "goals")
	c.Register(&savingsCmd{}, "goals")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")
	c.Register(&resetCmd{}, "backup")

	c.Register(&pinCmd{}, "security")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbPath = flag.String("db", "wealthsense.db", "Path to the local data store file")
var pinArg = flag.String("pin", "", "PIN unlocking a protected ledger for this invocation")

// openLedger opens the store and loads the ledger, enforcing the access
// gate: a ledger with a stored PIN stays locked until the correct -pin is
// supplied. The caller must Close the returned store.
func openLedger() (*wealthsense.Ledger, *kv.Store, error) {
	store, err := kv.Open(*dbPath)
	if err != nil {
		return nil, nil, err
	}
	ledger, err := wealthsense.LoadLedger(store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	gate := wealthsense.NewGate(ledger)
	if gate.Locked() {
		if err := gate.Unlock(*pinArg); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("%w (pass the PIN with -pin)", err)
		}
	}
	return ledger, store, nil
}

// saveLedger persists the whole ledger back into the store.
func saveLedger(store *kv.Store, ledger *wealthsense.Ledger) error {
	return wealthsense.SaveLedger(store, ledger)
}

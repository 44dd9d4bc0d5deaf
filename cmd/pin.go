package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

type pinCmd struct {
	set   string
	clear bool
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "set or clear the access PIN" }
func (*pinCmd) Usage() string {
	return `ws pin -set <digits>
ws pin -clear

  With a PIN set the ledger opens locked and every command needs -pin.
  Without flags, reports whether a PIN is set.
`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New PIN, exactly 4 digits.")
	f.BoolVar(&c.clear, "clear", false, "Remove the PIN and leave the ledger open.")
}

func (c *pinCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if c.set == "" && !c.clear {
		if ledger.PIN() == "" {
			fmt.Println("No PIN set.")
		} else {
			fmt.Println("A PIN is set.")
		}
		return subcommands.ExitSuccess
	}
	if c.set != "" && c.clear {
		fmt.Fprintln(os.Stderr, "Error: -set and -clear are mutually exclusive")
		return subcommands.ExitUsageError
	}

	gate := wealthsense.NewGate(ledger)
	if gate.Locked() {
		if err := gate.Unlock(*pinArg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v (pass the PIN with -pin)\n", err)
			return subcommands.ExitFailure
		}
	}

	if c.clear {
		if err := gate.SetPIN(""); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else if err := gate.SetPIN(c.set); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.clear {
		fmt.Println("PIN cleared.")
	} else {
		fmt.Println("PIN set.")
	}
	return subcommands.ExitSuccess
}

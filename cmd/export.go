package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a full backup of the ledger as JSON" }
func (*exportCmd) Usage() string {
	return `ws export [-o <file>]

  Writes every account, transaction, bill, recurring template and goal,
  plus the PIN when one is set, to the given file or to stdout. With a
  PIN set the export must be re-verified with -pin.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Destination file, stdout when empty.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	// Export is gated on its own: entry through the gate is not enough.
	gate := wealthsense.NewGate(ledger)
	if err := gate.VerifyPIN(*pinArg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (pass the PIN with -pin)\n", err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.out != "" {
		w, err = os.Create(c.out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := ledger.Export(w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.out != "" {
		fmt.Printf("Exported ledger to %s\n", c.out)
	}
	return subcommands.ExitSuccess
}

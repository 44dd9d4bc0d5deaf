package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/wealthsense/wealthsense"
)

type importCmd struct {
	in string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a ledger from a backup file" }
func (*importCmd) Usage() string {
	return `ws import -i <file>

  Reads a backup document and restores it. Accounts and transactions
  are mandatory and always replace the current ones; the other
  collections and the PIN are replaced only when the document carries
  them. A malformed document leaves the ledger untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "i", "", "Backup file to read, stdin when empty.")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := os.Stdin
	if c.in != "" {
		var err error
		r, err = os.Open(c.in)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer r.Close()
	}

	doc, err := wealthsense.DecodeBackup(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger.Restore(doc)
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d accounts and %d transactions\n", len(doc.Accounts), len(doc.Transactions))
	return subcommands.ExitSuccess
}

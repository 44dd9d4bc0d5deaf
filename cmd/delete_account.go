package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteAccountCmd holds the flags for the 'delete-account' subcommand.
type deleteAccountCmd struct {
	id  string
	yes bool
}

func (*deleteAccountCmd) Name() string { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string {
	return "delete an account and every transaction referencing it"
}
func (*deleteAccountCmd) Usage() string {
	return `ws delete-account -id <id> -yes

  Deletes the account and cascades to all its transactions. The deletion
  only runs with the explicit -yes confirmation.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to delete.")
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Deleting an account also deletes all its transactions. Re-run with -yes to confirm.")
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := ledger.DeleteAccount(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(store, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted account %s and its transactions\n", c.id)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type formatLedgerCmd struct{}

func (*formatLedgerCmd) Name() string     { return "format-ledger" }
func (*formatLedgerCmd) Synopsis() string { return "formats the ledger file into a canonical form" }
func (*formatLedgerCmd) Usage() string {
	return `format-ledger:
  formats the ledger file into a canonical form: purchases sorted by date,
  one JSON object per line with keys in a fixed order.
`
}

func (*formatLedgerCmd) SetFlags(f *flag.FlagSet) {}

func (*formatLedgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// 1. Read the ledger
	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	// 2. Write the ledger back to the same file
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Ledger file '%s' has been formatted.\n", config.LedgerFile)
	return subcommands.ExitSuccess
}

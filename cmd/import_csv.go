package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type importCSVCmd struct {
	file string
}

func (*importCSVCmd) Name() string     { return "import-csv" }
func (*importCSVCmd) Synopsis() string { return "appends purchases from a CSV file to the ledger" }
func (*importCSVCmd) Usage() string {
	return `import-csv -f <file.csv>:
  Appends all the purchases of a CSV file at the end of the ledger file.

  The CSV file starts with a header row naming the columns:

    #INVESTMENT DATE, SHARES PURCHASED, CASH PAID, INVESTOR
    2016-04-03, 1000, 10000.00, Sandy Lerner

  The import is all or nothing: an invalid row aborts it.
`
}

func (c *importCSVCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the CSV file to import")
}

func (c *importCSVCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f flag is required")
		return subcommands.ExitUsageError
	}

	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	purchases, err := captable.DecodeCSV(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding CSV file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	zerolog.Ctx(ctx).Debug().Str("file", c.file).Int("purchases", len(purchases)).Msg("CSV decoded")

	if err := AppendPurchases(purchases...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully appended %d purchases to %s\n", len(purchases), config.LedgerFile)
	return subcommands.ExitSuccess
}

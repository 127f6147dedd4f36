package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/google/subcommands"
)

type investorsCmd struct {
	date string
}

func (*investorsCmd) Name() string     { return "investors" }
func (*investorsCmd) Synopsis() string { return "lists the investors of the ledger" }
func (*investorsCmd) Usage() string {
	return `investors [-d <date>]:
  Lists, in alphabetical order, the investors with at least one purchase on or
  before the date.
`
}

func (c *investorsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", captable.Today().String(), "Only list investors with purchases on or before this date (YYYY-MM-DD)")
}

func (c *investorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := captable.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, investor := range ledger.Investors(on) {
		fmt.Fprintln(stdout, investor)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/captable"
	"github.com/google/subcommands"
)

// addCmd records a single share purchase.
type addCmd struct {
	date     string
	investor string
	shares   uint64
	cash     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "records a share purchase in the ledger" }
func (*addCmd) Usage() string {
	return `add -i <investor> -s <shares> -a <cash> [-d <date>]:
  Appends a share purchase at the end of the ledger file.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", captable.Today().String(), "Purchase date (YYYY-MM-DD)")
	f.StringVar(&c.investor, "i", "", "Investor identifier")
	f.Uint64Var(&c.shares, "s", 0, "Number of shares purchased")
	f.StringVar(&c.cash, "a", "0", "Cash paid for the shares")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := captable.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cash, err := captable.ParseCash(c.cash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cash amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	p := captable.NewPurchase(on, c.investor, captable.Shares(c.shares), cash)
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid purchase: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := AppendPurchases(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully appended purchase to %s\n", config.LedgerFile)
	return subcommands.ExitSuccess
}

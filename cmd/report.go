package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/captable"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

type reportCmd struct {
	date     string
	input    string
	output   string
	format   string
	compact  bool
	query    string
	order    string
	workers  int
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "computes the cap table on a given date" }
func (*reportCmd) Usage() string {
	return `report [-d <date>] [-f <file>] [-o <file>] [-format json|markdown] [-q <jsonpath>]:
  Computes the cap table on a given date: shares, cash paid and ownership of
  every investor. Purchases made after the date are ignored.

  Purchases are read from the ledger, or from -f: a CSV file if its extension
  is .csv, a JSONL ledger otherwise.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", captable.Today().String(), "Cap table date (YYYY-MM-DD), purchases made after it are ignored")
	f.StringVar(&c.input, "f", "", "Read purchases from this CSV or JSONL file instead of the ledger")
	f.StringVar(&c.output, "o", "", "Write the cap table to this file instead of the standard output")
	f.StringVar(&c.format, "format", "json", "Output format: json or markdown")
	f.BoolVar(&c.compact, "compact", false, "Write compact JSON instead of indented JSON")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the JSON cap table (e.g. $.cash_raised)")
	f.StringVar(&c.order, "order", config.Order, "Ownership list order: investor or first-seen")
	f.IntVar(&c.workers, "workers", config.Workers, "Number of workers accumulating purchases")
	f.StringVar(&c.currency, "c", config.Currency, "Currency used to display cash amounts in markdown (e.g. USD)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := zerolog.Ctx(ctx)

	on, err := captable.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	order, err := captable.ParseOrder(c.order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	switch c.format {
	case "json", "markdown":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, expected json or markdown\n", c.format)
		return subcommands.ExitUsageError
	}
	if c.query != "" && c.format != "json" {
		fmt.Fprintln(os.Stderr, "Error: -q can only be used with the json format")
		return subcommands.ExitUsageError
	}
	if c.currency != "" {
		if err := renderer.ValidateCurrency(c.currency); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	var ledger *captable.Ledger
	if c.input != "" {
		ledger, err = DecodePurchasesFile(c.input)
	} else {
		ledger, err = DecodeLedger(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading purchases: %v\n", err)
		return subcommands.ExitFailure
	}

	var report captable.Report
	if c.workers > 1 {
		report, err = captable.ComputeParallel(ctx, on, ledger.List(), c.workers, captable.WithOrder(order))
	} else {
		report, err = captable.Compute(on, ledger.Purchases(), captable.WithOrder(order))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing cap table on %s: %v\n", on, err)
		return subcommands.ExitFailure
	}
	log.Debug().
		Stringer("date", on).
		Int("investors", len(report.Ownership())).
		Uint64("shares", report.TotalShares().Uint64()).
		Msg("cap table computed")

	if c.output == "" {
		if err := c.write(stdout, report, true); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing cap table: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	w, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := c.write(w, report, false); err != nil {
		w.Close()
		fmt.Fprintf(os.Stderr, "Error writing cap table to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing output file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("output", c.output).Msg("cap table written")
	return subcommands.ExitSuccess
}

// write writes the report in the selected format. Markdown is rendered for the terminal
// when terminal is set.
func (c *reportCmd) write(w io.Writer, report captable.Report, terminal bool) error {
	if c.format == "markdown" {
		md := renderer.RenderCapTable(renderer.NewCapTable(report, c.currency))
		if terminal {
			return printMarkdown(w, md)
		}
		_, err := io.WriteString(w, md)
		return err
	}

	if c.query == "" {
		return captable.EncodeReport(w, report, !c.compact)
	}

	v, err := captable.QueryReport(report, c.query)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

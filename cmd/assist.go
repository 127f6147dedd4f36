package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/captable"
	"github.com/etnz/captable/agent"
	"github.com/etnz/captable/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	date  string
	model string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "starts an interactive session with the AI assistant about the cap table"
}
func (*assistCmd) Usage() string {
	return `assist [-d <date>] [question...]:
  Starts an interactive session with the AI assistant. The assistant knows the
  cap table on the given date. Arguments, if any, are asked as the first question.

  The Gemini API key is read from the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", captable.Today().String(), "Cap table date (YYYY-MM-DD)")
	f.StringVar(&c.model, "model", config.Model, "Gemini model to use")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := captable.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var initialPrompt []string
	if f.NArg() > 0 {
		initialPrompt = append(initialPrompt, strings.Join(f.Args(), " "))
	}

	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := captable.Compute(on, ledger.Purchases(), captable.WithOrder(captable.ByInvestor))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing cap table on %s: %v\n", on, err)
		return subcommands.ExitFailure
	}
	md := renderer.RenderCapTable(renderer.NewCapTable(report, config.Currency))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, c.model, md)
	if err := a.Run(ctx, client, initialPrompt...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the predictions of flags whose values are known.
var flagPredictors = map[string]complete.Predictor{
	"f":           predict.Files("*"),
	"o":           predict.Files("*"),
	"config":      predict.Files("*.yaml"),
	"ledger-file": predict.Files("*.jsonl"),
	"format":      predict.Set{"json", "markdown"},
	"order":       predict.Set{"investor", "first-seen"},
}

// Completion returns the shell completion tree of the application:
// the global flags of top and every command with its own flags.
func Completion(top *flag.FlagSet, commands ...subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(commands)),
		Flags: predictFlags(top),
	}
	for _, c := range commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{
			Flags: predictFlags(f),
			Args:  predict.Nothing,
		}
		if c.Name() == "assist" {
			sub.Args = predict.Something
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// predictFlags maps every flag of f to its predictor.
func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

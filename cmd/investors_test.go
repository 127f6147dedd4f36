package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestInvestorsCmd(t *testing.T) {
	testCases := []struct {
		date string
		want string
	}{
		{date: "2019-12-31", want: ""},
		{date: "2020-03-01", want: "Alice\nBob\n"},
		{date: "2020-04-01", want: "Alice\nBob\nCarl\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			useLedger(t, createTempLedger(t, scenarioLedger))
			b := captureStdout(t)

			cmd := &investorsCmd{}
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			cmd.SetFlags(f)
			if err := f.Parse([]string{"-d", tc.date}); err != nil {
				t.Fatal(err)
			}
			if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
				t.Fatalf("Expected ExitSuccess, got %v", status)
			}
			if got := b.String(); got != tc.want {
				t.Errorf("investors -d %s = %q, want %q", tc.date, got, tc.want)
			}
		})
	}
}

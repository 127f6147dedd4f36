package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// TestFormatLedger tests that the ledger file is rewritten in canonical form.
func TestFormatLedger(t *testing.T) {
	// Arrange
	originalLedgerContent := `{"investor":"Bob","date":"2020-2-1","cash":"500.00","shares":50}

{"date":"2020-01-01","shares":100, "investor":"Alice","cash":1000}
`
	expectedFormattedContent := `{"date":"2020-01-01","investor":"Alice","shares":100,"cash":1000}
{"date":"2020-02-01","investor":"Bob","shares":50,"cash":500}
`
	tempLedgerFile := createTempLedger(t, originalLedgerContent)
	useLedger(t, tempLedgerFile)
	captureStdout(t)

	cmd := &formatLedgerCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	// Act
	status := cmd.Execute(context.Background(), f)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
	if got := readFile(t, tempLedgerFile); got != expectedFormattedContent {
		t.Errorf("Formatted ledger mismatch.\nGot:\n%s\nWant:\n%s", got, expectedFormattedContent)
	}
}

func TestFormatLedger_InvalidLedger(t *testing.T) {
	original := `{"date":"2020-01-01","investor":"","shares":1,"cash":1}
`
	tempLedgerFile := createTempLedger(t, original)
	useLedger(t, tempLedgerFile)

	cmd := &formatLedgerCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
	if got := readFile(t, tempLedgerFile); got != original {
		t.Errorf("Invalid ledger was modified.\nGot:\n%s", got)
	}
}

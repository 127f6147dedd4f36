// Package cmd implements the CLI application to compute cap tables.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/captable"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists all the subcommands of the application.
var Commands = []subcommands.Command{
	&reportCmd{},
	&investorsCmd{},
	&addCmd{},
	&importCSVCmd{},
	&formatLedgerCmd{},
	&assistCmd{},
}

// DecodeLedger decodes the application ledger file.
// A missing ledger file is an empty ledger.
func DecodeLedger(ctx context.Context) (*captable.Ledger, error) {
	log := zerolog.Ctx(ctx)
	filename := config.LedgerFile
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("ledger", filename).Msg("ledger file does not exist, using an empty ledger instead")
		return captable.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := captable.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger file %q: %w", filename, err)
	}
	log.Debug().Str("ledger", filename).Int("purchases", ledger.Len()).Msg("ledger decoded")
	return ledger, nil
}

// EncodeLedger encodes the ledger to the application ledger file, replacing its content.
func EncodeLedger(ledger *captable.Ledger) error {
	filename := config.LedgerFile
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	if err := captable.EncodeLedger(f, ledger); err != nil {
		f.Close()
		return fmt.Errorf("error writing ledger file %q: %w", filename, err)
	}
	return f.Close()
}

// AppendPurchases appends purchases at the end of the application ledger file.
func AppendPurchases(purchases ...captable.Purchase) error {
	filename := config.LedgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", filename, err)
	}
	for _, p := range purchases {
		if err := captable.EncodePurchase(f, p); err != nil {
			f.Close()
			return fmt.Errorf("error writing to ledger file %q: %w", filename, err)
		}
	}
	return f.Close()
}

// DecodePurchasesFile reads purchases from a file other than the ledger.
// Files with a ".csv" extension are read as CSV, anything else as a JSONL ledger.
func DecodePurchasesFile(filename string) (*captable.Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", filename, err)
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		ledger, err := captable.DecodeLedger(f)
		if err != nil {
			return nil, fmt.Errorf("error decoding %q: %w", filename, err)
		}
		return ledger, nil
	}

	purchases, err := captable.DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding CSV file %q: %w", filename, err)
	}
	ledger := captable.NewLedger()
	ledger.Append(purchases...)
	return ledger, nil
}

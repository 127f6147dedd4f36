package captable

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeLedger decodes purchases from a stream of JSONL data from an io.Reader,
// one purchase per line, and returns a sorted Ledger.
//
// Every purchase is validated, unknown fields are rejected.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	var purchases []Purchase
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		dec := json.NewDecoder(bytes.NewReader(lineBytes))
		dec.DisallowUnknownFields()
		var p Purchase
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("line %d: could not decode purchase %q: %w", line, lineBytes, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: invalid purchase: %w", line, err)
		}
		purchases = append(purchases, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.Append(purchases...)
	return ledger, nil
}

// EncodePurchase marshals a single purchase to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodePurchase(w io.Writer, p Purchase) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write purchase: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, in
// chronological order. Keys are always written in the same order so that the
// output is canonical.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, p := range ledger.purchases {
		if err := EncodePurchase(w, p); err != nil {
			return err
		}
	}
	return nil
}

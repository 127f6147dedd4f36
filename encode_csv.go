package captable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSV column headers, compared after trimming spaces and a leading '#', case-insensitively.
const (
	csvDate     = "INVESTMENT DATE"
	csvShares   = "SHARES PURCHASED"
	csvCash     = "CASH PAID"
	csvInvestor = "INVESTOR"
)

// DecodeCSV reads purchases from CSV data with a header row like:
//
//	#INVESTMENT DATE, SHARES PURCHASED, CASH PAID, INVESTOR
//	2020-01-01, 100, 1000.00, Alice
//
// Columns may come in any order. Purchases are returned in input order and
// validated; errors report the CSV line.
func DecodeCSV(r io.Reader) ([]Purchase, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty CSV input, a header row is required")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}
	cols, err := csvColumns(header)
	if err != nil {
		return nil, err
	}

	var purchases []Purchase
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read CSV data: %w", err)
		}
		line, _ := cr.FieldPos(0)
		p, err := parseCSVRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: invalid purchase: %w", line, err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// csvColumns maps each required header to its column index.
func csvColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range header {
		name := strings.TrimSpace(h)
		name = strings.TrimSpace(strings.TrimPrefix(name, "#"))
		cols[strings.ToUpper(name)] = i
	}
	var errs error
	for _, name := range []string{csvDate, csvShares, csvCash, csvInvestor} {
		if _, ok := cols[name]; !ok {
			errs = errors.Join(errs, fmt.Errorf("missing CSV column %q", name))
		}
	}
	return cols, errs
}

func parseCSVRecord(record []string, cols map[string]int) (Purchase, error) {
	field := func(name string) string { return strings.TrimSpace(record[cols[name]]) }

	day, err := ParseDate(field(csvDate))
	if err != nil {
		return Purchase{}, err
	}
	shares, err := strconv.ParseUint(field(csvShares), 10, 64)
	if err != nil {
		return Purchase{}, fmt.Errorf("invalid number of shares %q: %w", field(csvShares), err)
	}
	cash, err := ParseCash(field(csvCash))
	if err != nil {
		return Purchase{}, err
	}
	return NewPurchase(day, field(csvInvestor), Shares(shares), cash), nil
}

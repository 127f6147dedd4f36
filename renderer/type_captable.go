package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/captable"
)

// CapTable is the view of a captable.Report ready to be rendered.
// Every value is already formatted.
type CapTable struct {
	Date        string `json:"date"`
	Currency    string `json:"currency,omitempty"`
	CashRaised  string `json:"cashRaised"`
	TotalShares string `json:"totalShares"`
	Rows        []Row  `json:"rows"`
}

// Row is one investor line of the ownership table.
type Row struct {
	Investor  string `json:"investor"`
	Shares    string `json:"shares"`
	CashPaid  string `json:"cashPaid"`
	Ownership string `json:"ownership"`
}

// NewCapTable creates the view of a report. If currency is not empty, cash
// amounts are displayed in that currency (e.g. "$1,000.00" for USD),
// otherwise as plain two-digit decimals.
func NewCapTable(r captable.Report, currency string) *CapTable {
	ct := &CapTable{
		Date:        r.Date().Format(captable.ReportDateFormat),
		Currency:    currency,
		CashRaised:  FormatCash(r.CashRaised(), currency),
		TotalShares: r.TotalShares().String(),
	}
	for _, o := range r.Ownership() {
		ct.Rows = append(ct.Rows, Row{
			Investor:  escapeCell(o.Investor),
			Shares:    o.Shares.String(),
			CashPaid:  FormatCash(o.Cash, currency),
			Ownership: o.Percent.String(),
		})
	}
	return ct
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// FormatCash formats c in the given currency, or as a plain two-digit decimal
// if currency is empty or unknown.
func FormatCash(c captable.Cash, currency string) string {
	if currency == "" {
		return c.String()
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return c.String() + " " + currency
	}
	minor := c.Decimal().Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// escapeCell makes s safe to use in a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

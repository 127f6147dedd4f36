package captable

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/PaesslerAG/jsonpath"
)

// Ownership is the aggregated position of one investor.
type Ownership struct {
	Investor string
	Shares   Shares
	Cash     Cash
	Percent  Percent
}

// MarshalJSON implements the json.Marshaler interface for Ownership.
func (o Ownership) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("investor", o.Investor)
	w.Append("shares", o.Shares)
	w.Append("cash_paid", o.Cash.String())
	w.Append("ownership", o.Percent.String())
	return w.MarshalJSON()
}

// Report is the cap table on a given date.
//
// A Report is immutable: it is only built by a successful CapTable.Report.
type Report struct {
	date        Date
	cashRaised  Cash
	totalShares Shares
	ownership   []Ownership
}

// Date returns the report date.
func (r Report) Date() Date { return r.date }

// CashRaised returns the total cash paid on or before the report date.
func (r Report) CashRaised() Cash { return r.cashRaised }

// TotalShares returns the total number of shares purchased on or before the report date.
func (r Report) TotalShares() Shares { return r.totalShares }

// Ownership returns a copy of the investors' positions, in report order.
func (r Report) Ownership() []Ownership { return slices.Clone(r.ownership) }

// Investor returns the position of an investor.
func (r Report) Investor(investor string) (Ownership, bool) {
	for _, o := range r.ownership {
		if o.Investor == investor {
			return o, true
		}
	}
	return Ownership{}, false
}

// MarshalJSON implements the json.Marshaler interface for Report.
func (r Report) MarshalJSON() ([]byte, error) {
	ownership := r.ownership
	if ownership == nil {
		ownership = []Ownership{}
	}
	var w jsonObjectWriter
	w.Append("date", r.date.Format(ReportDateFormat))
	w.Append("cash_raised", r.cashRaised.String())
	w.Append("total_number_of_shares", r.totalShares)
	w.Append("ownership_list", ownership)
	return w.MarshalJSON()
}

// EncodeReport writes the report as a JSON document followed by a newline.
// If indent is true the document is indented with two spaces.
func EncodeReport(w io.Writer, r Report, indent bool) error {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// QueryReport evaluates a JSONPath expression (e.g. "$.ownership_list[0].investor")
// against the JSON document of the report.
func QueryReport(r Report, path string) (any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return v, nil
}

package captable

import (
	"bytes"
	"slices"
	"testing"
)

func TestEncodeReport(t *testing.T) {
	r, err := Compute(MustParse("2020-03-01"), slices.Values(scenario()))
	if err != nil {
		t.Fatalf("Compute() returned unexpected error: %v", err)
	}

	t.Run("indented", func(t *testing.T) {
		var b bytes.Buffer
		if err := EncodeReport(&b, r, true); err != nil {
			t.Fatalf("EncodeReport() returned unexpected error: %v", err)
		}
		want := `{
  "date": "03/01/2020",
  "cash_raised": "1500.00",
  "total_number_of_shares": 150,
  "ownership_list": [
    {
      "investor": "Alice",
      "shares": 100,
      "cash_paid": "1000.00",
      "ownership": "66.67"
    },
    {
      "investor": "Bob",
      "shares": 50,
      "cash_paid": "500.00",
      "ownership": "33.33"
    }
  ]
}
`
		if got := b.String(); got != want {
			t.Errorf("EncodeReport() mismatch.\nGot:\n%s\nWant:\n%s", got, want)
		}
	})

	t.Run("compact", func(t *testing.T) {
		var b bytes.Buffer
		if err := EncodeReport(&b, r, false); err != nil {
			t.Fatalf("EncodeReport() returned unexpected error: %v", err)
		}
		want := `{"date":"03/01/2020","cash_raised":"1500.00","total_number_of_shares":150,"ownership_list":[{"investor":"Alice","shares":100,"cash_paid":"1000.00","ownership":"66.67"},{"investor":"Bob","shares":50,"cash_paid":"500.00","ownership":"33.33"}]}` + "\n"
		if got := b.String(); got != want {
			t.Errorf("EncodeReport() = %q, want %q", got, want)
		}
	})
}

func TestReport_CashRounding(t *testing.T) {
	purchases := []Purchase{
		NewPurchase(MustParse("2020-01-01"), "Alice", 1, C(0.005)),
		NewPurchase(MustParse("2020-01-01"), "Alice", 1, C(0.005)),
		NewPurchase(MustParse("2020-01-01"), "Bob", 1, C(1234.5)),
	}
	r, err := Compute(MustParse("2020-01-01"), slices.Values(purchases))
	if err != nil {
		t.Fatalf("Compute() returned unexpected error: %v", err)
	}
	// 0.005+0.005 is exactly 0.01 and 1234.5 is padded to two digits.
	if got, want := r.CashRaised().String(), "1234.51"; got != want {
		t.Errorf("CashRaised() = %q, want %q", got, want)
	}
	alice, _ := r.Investor("Alice")
	if got, want := alice.Cash.String(), "0.01"; got != want {
		t.Errorf("Alice cash = %q, want %q", got, want)
	}
}

func TestQueryReport(t *testing.T) {
	r, err := Compute(MustParse("2020-03-01"), slices.Values(scenario()))
	if err != nil {
		t.Fatalf("Compute() returned unexpected error: %v", err)
	}

	testCases := []struct {
		path string
		want any
	}{
		{path: "$.cash_raised", want: "1500.00"},
		{path: "$.total_number_of_shares", want: 150.0},
		{path: "$.ownership_list[1].investor", want: "Bob"},
		{path: "$.ownership_list[0].ownership", want: "66.67"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := QueryReport(r, tc.path)
			if err != nil {
				t.Fatalf("QueryReport(%q) returned unexpected error: %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("QueryReport(%q) = %v (%T), want %v", tc.path, got, got, tc.want)
			}
		})
	}

	if _, err := QueryReport(r, "$.ownership_list["); err == nil {
		t.Error("QueryReport() expected an error for an invalid path, but got nil")
	}
}

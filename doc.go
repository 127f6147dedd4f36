// Package captable computes point-in-time capitalization tables from a ledger
// of equity purchases.
//
// The core is a two-pass aggregation engine:
//   - Date filtering: only purchases made on or before the report date count.
//   - Aggregation: purchases are grouped by investor (exact, case-sensitive
//     identifier) while grand totals of shares and cash are accumulated.
//   - Ownership: once the stream is exhausted, each investor's share of the
//     total is derived. A cap table with no shares at all is an error.
//   - Assembly: investors are listed in a deterministic order, so that the
//     same ledger and date always produce byte-identical reports.
//
// Cash is accumulated as an exact decimal and only rounded to two digits
// when the report is encoded.
//
// Around the engine, the package provides the ledger (JSONL) and CSV decoders
// that feed it, and the JSON encoding of the resulting Report. They serve
// the `captable` command-line tool.
package captable

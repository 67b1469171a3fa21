package model

// Snapshot is the full set of record streams the engine aggregates over.
// It is materialized once by the caller (the store, or a test fixture) and
// treated as read-only: every statement is recomputed in full from the
// snapshot, never incrementally patched.
type Snapshot struct {
	Quotes        []Quote
	LedgerEntries []LedgerEntry
	Payroll       []PayrollEntry
	Equity        []EquityEntry
	Assets        []AssetEntry
	Opportunities []Opportunity
}

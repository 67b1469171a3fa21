package model

import "github.com/shopspring/decimal"

// LedgerEntry is a single spend posting from the bookkeeping subsystem.
// Amounts are always in base currency.
type LedgerEntry struct {
	Category    string
	SubCategory string
	AmountPHP   decimal.Decimal
	ProjectID   string // non-blank marks a project-attributed direct cost
}

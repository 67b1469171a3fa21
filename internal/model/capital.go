package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquityEntry is a capital contribution by a partner, in base currency.
// Contributions are additive and only ever reversed by explicit deletion
// in the owning subsystem.
type EquityEntry struct {
	Partner   string
	Amount    decimal.Decimal
	Type      string // e.g. CASH
	CreatedAt time.Time
}

// AssetEntry is a fixed-asset booking at acquisition cost, in base
// currency. No depreciation schedule is modeled.
type AssetEntry struct {
	Name      string
	Value     decimal.Decimal
	Type      string
	CreatedAt time.Time
}

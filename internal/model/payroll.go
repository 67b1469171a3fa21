package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollType classifies a payroll disbursement.
type PayrollType string

const (
	PayrollDirect PayrollType = "DIRECT" // delivery labor, part of COGS
	PayrollAdmin  PayrollType = "ADMIN"  // administrative overhead
)

// PayrollEntry is a single payroll disbursement in base currency.
// Entries are owned by the payroll subsystem; the engine reads a snapshot.
type PayrollEntry struct {
	Type      PayrollType
	Amount    decimal.Decimal
	Date      time.Time
	StaffName string
	Role      string
}

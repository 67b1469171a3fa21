// Package classify holds the pure cost-classification rules: which ledger
// postings are direct project costs and which payroll disbursements are
// delivery labor versus administrative overhead.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/model"
)

// directCostKeywords mark a ledger category or subcategory as a direct
// material cost, matched case-insensitively as substrings.
var directCostKeywords = []string{
	"cost of goods sold",
	"project materials",
	"direct materials",
	"equipment",
	"import duties",
	"freight",
	"customs",
	"logistics",
}

// IsDirectMaterialCost reports whether a ledger entry is a direct,
// sale-attributable material cost. A non-blank project ID attributes the
// spend to a project outright; otherwise the category text decides.
// A whitespace-only project ID does not count as attribution.
func IsDirectMaterialCost(e model.LedgerEntry) bool {
	if strings.TrimSpace(e.ProjectID) != "" {
		return true
	}
	cat := strings.ToLower(e.Category)
	sub := strings.ToLower(e.SubCategory)
	for _, kw := range directCostKeywords {
		if strings.Contains(cat, kw) || strings.Contains(sub, kw) {
			return true
		}
	}
	return false
}

// IsDirectLabor reports whether a payroll entry is delivery labor.
func IsDirectLabor(p model.PayrollEntry) bool {
	return p.Type == model.PayrollDirect
}

// IsAdminLabor reports whether a payroll entry is administrative overhead.
func IsAdminLabor(p model.PayrollEntry) bool {
	return p.Type == model.PayrollAdmin
}

// LedgerPartition is a single-pass split of all ledger entries into exactly
// two buckets. Every entry lands in exactly one bucket, so
// DirectMaterialTotal + OtherOpexTotal always equals total ledger spend.
type LedgerPartition struct {
	DirectMaterials     []model.LedgerEntry
	OtherOpex           []model.LedgerEntry
	DirectMaterialTotal decimal.Decimal
	OtherOpexTotal      decimal.Decimal
}

// Total returns the combined spend across both buckets.
func (p LedgerPartition) Total() decimal.Decimal {
	return p.DirectMaterialTotal.Add(p.OtherOpexTotal)
}

// PartitionLedger classifies every ledger entry into the direct-material or
// other-opex bucket.
func PartitionLedger(entries []model.LedgerEntry) LedgerPartition {
	var p LedgerPartition
	for _, e := range entries {
		if IsDirectMaterialCost(e) {
			p.DirectMaterials = append(p.DirectMaterials, e)
			p.DirectMaterialTotal = p.DirectMaterialTotal.Add(e.AmountPHP)
		} else {
			p.OtherOpex = append(p.OtherOpex, e)
			p.OtherOpexTotal = p.OtherOpexTotal.Add(e.AmountPHP)
		}
	}
	return p
}

// PayrollSplit totals payroll by classification. Entries whose type is
// neither DIRECT nor ADMIN are excluded from both labor totals and
// accumulated in UnclassifiedTotal so callers can surface them.
type PayrollSplit struct {
	DirectTotal       decimal.Decimal
	AdminTotal        decimal.Decimal
	UnclassifiedTotal decimal.Decimal
}

// SplitPayroll totals payroll entries by classification.
func SplitPayroll(entries []model.PayrollEntry) PayrollSplit {
	var s PayrollSplit
	for _, p := range entries {
		switch {
		case IsDirectLabor(p):
			s.DirectTotal = s.DirectTotal.Add(p.Amount)
		case IsAdminLabor(p):
			s.AdminTotal = s.AdminTotal.Add(p.Amount)
		default:
			s.UnclassifiedTotal = s.UnclassifiedTotal.Add(p.Amount)
		}
	}
	return s
}

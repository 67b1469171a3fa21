// Package report derives the three financial statements and their
// budget-vs-actual variances from a record snapshot. Every build function
// is pure: the snapshot is read-only, results are recomputed in full on
// each call, and empty inputs yield all-zero statements rather than
// errors.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/classify"
	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/model"
)

// ProfitAndLoss is the derived income statement, in base currency.
type ProfitAndLoss struct {
	Month time.Month

	BOIRevenue    decimal.Decimal
	NonBOIRevenue decimal.Decimal // reserved revenue stream, currently always zero
	Revenue       decimal.Decimal

	DirectLabor     decimal.Decimal
	DirectMaterials decimal.Decimal
	COGS            decimal.Decimal
	GrossProfit     decimal.Decimal

	AdminSalaries decimal.Decimal
	OtherOpex     decimal.Decimal
	OpEx          decimal.Decimal

	NetIncome decimal.Decimal
	Margin    decimal.Decimal // net margin as a percentage, 0 when revenue is 0

	// Payroll excluded from both labor totals because its type is neither
	// DIRECT nor ADMIN. Surfaced as a diagnostic, not added to any total.
	UnclassifiedPayroll decimal.Decimal

	BudgetRevenue   decimal.Decimal
	BudgetCOGS      decimal.Decimal
	BudgetOpEx      decimal.Decimal
	BudgetNetIncome decimal.Decimal

	RevenueVariance   decimal.Decimal
	COGSVariance      decimal.Decimal
	OpExVariance      decimal.Decimal
	NetIncomeVariance decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// BuildProfitAndLoss aggregates quotes, ledger postings, and payroll into
// the income statement, and compares it against the month's budget row.
func BuildProfitAndLoss(snap model.Snapshot, rates config.RateTable, budget config.BudgetTable, month time.Month) ProfitAndLoss {
	pnl := ProfitAndLoss{Month: month}

	baseRate := rates.BudgetRateDec()

	// Revenue: recognized quotes under the BOI program, converted at the
	// quote-time rate when one was captured.
	for _, q := range snap.Quotes {
		if !q.Recognized() || !q.BOIActivity {
			continue
		}
		pnl.BOIRevenue = pnl.BOIRevenue.Add(q.AmountBase(baseRate))
	}
	pnl.Revenue = pnl.BOIRevenue.Add(pnl.NonBOIRevenue)

	payroll := classify.SplitPayroll(snap.Payroll)
	pnl.DirectLabor = payroll.DirectTotal
	pnl.AdminSalaries = payroll.AdminTotal
	pnl.UnclassifiedPayroll = payroll.UnclassifiedTotal

	ledger := classify.PartitionLedger(snap.LedgerEntries)
	pnl.DirectMaterials = ledger.DirectMaterialTotal
	pnl.OtherOpex = ledger.OtherOpexTotal

	pnl.COGS = pnl.DirectLabor.Add(pnl.DirectMaterials)
	pnl.GrossProfit = pnl.Revenue.Sub(pnl.COGS)
	pnl.OpEx = pnl.OtherOpex.Add(pnl.AdminSalaries)
	pnl.NetIncome = pnl.Revenue.Sub(pnl.COGS).Sub(pnl.OpEx)

	if !pnl.Revenue.IsZero() {
		pnl.Margin = pnl.NetIncome.Div(pnl.Revenue).Mul(hundred)
	}

	row := budget.ForMonth(month)
	pnl.BudgetRevenue = row.RevenueDec().Mul(baseRate)
	pnl.BudgetCOGS = row.COGSDec().Mul(baseRate)
	pnl.BudgetOpEx = row.OpExDec().Mul(baseRate)
	pnl.BudgetNetIncome = pnl.BudgetRevenue.Sub(pnl.BudgetCOGS).Sub(pnl.BudgetOpEx)

	pnl.RevenueVariance = pnl.Revenue.Sub(pnl.BudgetRevenue)
	pnl.COGSVariance = pnl.COGS.Sub(pnl.BudgetCOGS)
	pnl.OpExVariance = pnl.OpEx.Sub(pnl.BudgetOpEx)
	pnl.NetIncomeVariance = pnl.NetIncome.Sub(pnl.BudgetNetIncome)

	return pnl
}

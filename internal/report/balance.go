package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/model"
)

// BalanceSheet is the derived statement of financial position, in base
// currency. Cash treats retained net income as cash-equivalent, a
// documented modeling simplification rather than a cash-basis
// reconciliation.
type BalanceSheet struct {
	Cash        decimal.Decimal
	AR          decimal.Decimal
	FixedAssets decimal.Decimal
	TotalAssets decimal.Decimal

	Liabilities      decimal.Decimal // reserved; no payables source modeled
	Equity           decimal.Decimal
	RetainedEarnings decimal.Decimal

	BudgetCash             decimal.Decimal
	BudgetRetainedEarnings decimal.Decimal

	CashVariance             decimal.Decimal
	RetainedEarningsVariance decimal.Decimal
}

// BalanceError reports a failed balance identity. It is a fatal invariant
// violation: the sheet must never be presented as balanced when it is not.
type BalanceError struct {
	TotalAssets decimal.Decimal
	Claims      decimal.Decimal // liabilities + equity + retained earnings
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance sheet out of balance: assets %s != claims %s (diff %s)",
		e.TotalAssets.StringFixed(2), e.Claims.StringFixed(2),
		e.TotalAssets.Sub(e.Claims).StringFixed(2))
}

// Check asserts the balance identity totalAssets == liabilities + equity +
// retainedEarnings within epsilon base-currency units.
func (b BalanceSheet) Check(epsilon decimal.Decimal) error {
	claims := b.Liabilities.Add(b.Equity).Add(b.RetainedEarnings)
	if b.TotalAssets.Sub(claims).Abs().GreaterThanOrEqual(epsilon) {
		return &BalanceError{TotalAssets: b.TotalAssets, Claims: claims}
	}
	return nil
}

// BuildBalanceSheet aggregates equity contributions, fixed assets, and
// invoiced quotes into the statement of financial position. Cash embeds
// the P&L net income once; equity and retained earnings are reported
// separately, which is what makes the identity hold by construction.
func BuildBalanceSheet(snap model.Snapshot, pnl ProfitAndLoss, rates config.RateTable, budget config.BudgetTable, month time.Month) BalanceSheet {
	var bs BalanceSheet

	for _, e := range snap.Equity {
		bs.Equity = bs.Equity.Add(e.Amount)
	}
	bs.RetainedEarnings = pnl.NetIncome
	bs.Cash = bs.Equity.Add(pnl.NetIncome)

	baseRate := rates.BudgetRateDec()
	for _, q := range snap.Quotes {
		if q.Status != model.QuoteInvoiced {
			continue
		}
		bs.AR = bs.AR.Add(q.AmountBase(baseRate))
	}

	for _, a := range snap.Assets {
		bs.FixedAssets = bs.FixedAssets.Add(a.Value)
	}

	bs.TotalAssets = bs.Cash.Add(bs.AR).Add(bs.FixedAssets)

	bs.BudgetRetainedEarnings = pnl.BudgetNetIncome
	bs.BudgetCash = bs.Equity.Add(pnl.BudgetNetIncome)
	bs.CashVariance = bs.Cash.Sub(bs.BudgetCash)
	bs.RetainedEarningsVariance = bs.RetainedEarnings.Sub(bs.BudgetRetainedEarnings)

	return bs
}

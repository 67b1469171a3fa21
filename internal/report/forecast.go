package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/model"
)

// Runway is months of cash remaining at the current burn rate. A burn
// rate of zero or less means the cash never runs out; that is an explicit
// sentinel, never a division fault.
type Runway struct {
	Months   decimal.Decimal
	Infinite bool
}

func (r Runway) String() string {
	if r.Infinite {
		return "∞"
	}
	return r.Months.StringFixed(1) + " mo"
}

// Forecast is the derived cash-flow outlook, in base currency.
type Forecast struct {
	CurrentCash    decimal.Decimal
	PipelineInflow decimal.Decimal
	MonthlyBurn    decimal.Decimal
	Runway         Runway
	BudgetedBurn   decimal.Decimal
}

var twelve = decimal.NewFromInt(12)

// BuildForecast derives burn rate and runway from the pipeline, the
// balance sheet's cash, and the P&L's operating expense. Monthly burn
// averages the aggregated opex over twelve months, an approximation when
// the records cover a shorter span.
func BuildForecast(snap model.Snapshot, pnl ProfitAndLoss, bs BalanceSheet, rates config.RateTable, budget config.BudgetTable, month time.Month) Forecast {
	f := Forecast{CurrentCash: bs.Cash}

	baseRate := rates.BudgetRateDec()
	for _, o := range snap.Opportunities {
		f.PipelineInflow = f.PipelineInflow.Add(o.Weighted().Mul(baseRate))
	}

	f.MonthlyBurn = pnl.OpEx.Div(twelve)
	if f.MonthlyBurn.IsPositive() {
		f.Runway = Runway{Months: bs.Cash.Div(f.MonthlyBurn)}
	} else {
		f.Runway = Runway{Infinite: true}
	}

	f.BudgetedBurn = budget.ForMonth(month).OpExDec().Mul(baseRate)

	return f
}

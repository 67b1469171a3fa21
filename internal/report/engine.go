package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/model"
)

// BalanceEpsilon is the tolerance for the balance-sheet identity, one
// base-currency unit.
var BalanceEpsilon = decimal.NewFromInt(1)

// Statements bundles the three derived statements for one snapshot.
type Statements struct {
	PnL      ProfitAndLoss
	Balance  BalanceSheet
	Forecast Forecast
}

// Compute derives all statements from a snapshot in dependency order and
// asserts the balance identity. The statements are returned even when the
// identity fails so callers can show the diagnostic alongside the
// figures. Computing twice on the same snapshot yields identical results.
func Compute(snap model.Snapshot, cfg *config.Config, asOf time.Time) (Statements, error) {
	month := asOf.Month()

	pnl := BuildProfitAndLoss(snap, cfg.Rates, cfg.Budget, month)
	bs := BuildBalanceSheet(snap, pnl, cfg.Rates, cfg.Budget, month)
	fc := BuildForecast(snap, pnl, bs, cfg.Rates, cfg.Budget, month)

	stmts := Statements{PnL: pnl, Balance: bs, Forecast: fc}
	if err := bs.Check(BalanceEpsilon); err != nil {
		return stmts, err
	}
	return stmts, nil
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnotteam/finrep/internal/model"
)

func balancedSnapshot() model.Snapshot {
	return model.Snapshot{
		Quotes: []model.Quote{
			{Ref: "Q-2025-001", Status: model.QuoteWon, FinalSalesPrice: dec("1000"), ForexRate: dec("58.5"), BOIActivity: true},
		},
		LedgerEntries: []model.LedgerEntry{
			{Category: "Freight", AmountPHP: dec("5000")},
			{Category: "Rent", AmountPHP: dec("3000")},
		},
		Payroll: []model.PayrollEntry{
			{Type: model.PayrollDirect, Amount: dec("20000")},
			{Type: model.PayrollAdmin, Amount: dec("15000")},
		},
		Equity: []model.EquityEntry{
			{Partner: "A", Amount: dec("100000")},
		},
		Opportunities: []model.Opportunity{
			{Name: "Expansion", EstimatedValue: dec("10000"), Probability: dec("50")},
		},
	}
}

func TestCompute(t *testing.T) {
	cfg := testConfig()
	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	stmts, err := Compute(balancedSnapshot(), cfg, asOf)
	require.NoError(t, err)

	assert.True(t, stmts.PnL.Revenue.Equal(dec("58500")))
	assert.True(t, stmts.Balance.Cash.Equal(stmts.PnL.NetIncome.Add(dec("100000"))))
	assert.False(t, stmts.Forecast.Runway.Infinite)
	assert.Equal(t, time.June, stmts.PnL.Month)
}

func TestCompute_Idempotent(t *testing.T) {
	cfg := testConfig()
	snap := balancedSnapshot()
	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	first, err1 := Compute(snap, cfg, asOf)
	second, err2 := Compute(snap, cfg, asOf)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "same snapshot, same statements")
}

func TestCompute_EmptySnapshot(t *testing.T) {
	cfg := testConfig()

	stmts, err := Compute(model.Snapshot{}, cfg, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, stmts.PnL.NetIncome.IsZero())
	assert.True(t, stmts.Balance.TotalAssets.IsZero())
	assert.True(t, stmts.Forecast.Runway.Infinite)
}

func TestCompute_SurfacesBalanceError(t *testing.T) {
	cfg := testConfig()
	snap := balancedSnapshot()
	snap.Assets = []model.AssetEntry{{Name: "Crane", Value: dec("250000")}}

	stmts, err := Compute(snap, cfg, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	var berr *BalanceError
	assert.ErrorAs(t, err, &berr)
	// Statements still come back so the caller can show the diagnostic
	// next to the figures.
	assert.True(t, stmts.Balance.FixedAssets.Equal(dec("250000")))
}

func TestCompute_NeverMutatesSnapshot(t *testing.T) {
	cfg := testConfig()
	snap := balancedSnapshot()
	before := snap.Quotes[0].FinalSalesPrice

	_, err := Compute(snap, cfg, time.Now())
	require.NoError(t, err)
	assert.True(t, snap.Quotes[0].FinalSalesPrice.Equal(before))
}

package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnotteam/finrep/internal/config"
)

func testRates() config.RateTable {
	return config.RateTable{
		BaseCurrency: "PHP",
		BudgetRate:   58.50,
		Display: []config.DisplayRate{
			{Code: "USD", Multiplier: 0.02},
			{Code: "EUR", Multiplier: 0.016},
		},
	}
}

func TestConvert(t *testing.T) {
	p := NewPresenter(testRates())
	amount := decimal.NewFromInt(100000)

	got, err := p.Convert(amount, "PHP")
	require.NoError(t, err)
	assert.True(t, got.Equal(amount), "base currency converts to itself")

	got, err = p.Convert(amount, "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2000)))

	_, err = p.Convert(amount, "JPY")
	assert.Error(t, err)
}

func TestConvert_RoundTrip(t *testing.T) {
	p := NewPresenter(testRates())
	amount := decimal.NewFromFloat(123456.78)

	for _, code := range p.Codes() {
		converted, err := p.Convert(amount, code)
		require.NoError(t, err)

		mult, ok := testRates().Multiplier(code)
		require.True(t, ok)

		back := converted.Div(mult)
		assert.True(t, back.Sub(amount).Abs().LessThan(decimal.NewFromFloat(1e-6)),
			"round trip through %s: got %s", code, back)
	}
}

func TestFormat_Magnitude(t *testing.T) {
	p := NewPresenter(testRates())

	// 100,000 PHP at 0.02 = 2,000 USD.
	got, err := p.Format(decimal.NewFromInt(100000), "USD")
	require.NoError(t, err)
	assert.Equal(t, "$2,000.00", got)

	// Negative amounts render as magnitude; the caller adds the sign.
	got, err = p.Format(decimal.NewFromInt(-100000), "USD")
	require.NoError(t, err)
	assert.Equal(t, "$2,000.00", got)
}

func TestFormat_TwoDecimals(t *testing.T) {
	p := NewPresenter(testRates())

	got, err := p.Format(decimal.NewFromFloat(1234.5), "PHP")
	require.NoError(t, err)
	assert.Contains(t, got, "1,234.50")
}

func TestSupports(t *testing.T) {
	p := NewPresenter(testRates())
	assert.True(t, p.Supports("PHP"))
	assert.True(t, p.Supports("USD"))
	assert.False(t, p.Supports("GBP"))
}

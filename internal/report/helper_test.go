package report

import (
	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/config"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testConfig returns a deterministic config: base rate 58.50, flat budget
// of 1000 revenue / 500 cogs / 200 opex per month in the budget currency.
func testConfig() *config.Config {
	budget := make(config.BudgetTable, 12)
	for i := range budget {
		budget[i] = config.MonthlyBudget{Revenue: 1000, COGS: 500, OpEx: 200}
	}
	return &config.Config{
		Rates: config.RateTable{
			BaseCurrency: "PHP",
			BudgetRate:   58.50,
			Display: []config.DisplayRate{
				{Code: "USD", Multiplier: 0.0171},
			},
		},
		Budget: budget,
	}
}

package model

import "github.com/shopspring/decimal"

// Opportunity is a pipeline opportunity used for weighted inflow
// forecasting. EstimatedValue is in the budgeting currency; Probability
// is a percentage in [0, 100].
type Opportunity struct {
	Name           string
	EstimatedValue decimal.Decimal
	Probability    decimal.Decimal
}

// Weighted returns the probability-weighted value of the opportunity.
func (o Opportunity) Weighted() decimal.Decimal {
	return o.EstimatedValue.Mul(o.Probability).Div(decimal.NewFromInt(100))
}

package report

import "github.com/shopspring/decimal"

// Direction classifies a variance as good or bad for the business.
type Direction string

const (
	Favorable   Direction = "favorable"
	Unfavorable Direction = "unfavorable"
)

// Variance compares an actual figure against its budgeted counterpart.
// For revenue-like metrics a positive variance is favorable; for
// cost-like metrics (Inverse set) a negative variance is favorable. The
// classification depends only on the variance sign and the flag, never on
// magnitude. A zero variance is on budget and counts as favorable.
type Variance struct {
	Actual    decimal.Decimal
	Budget    decimal.Decimal
	Amount    decimal.Decimal // actual - budget
	Percent   decimal.Decimal // zero when budget is zero
	Inverse   bool
	Direction Direction
}

// Compare computes the variance between an actual and a budgeted figure.
// Set inverse for cost-like metrics such as COGS and opex.
func Compare(actual, budget decimal.Decimal, inverse bool) Variance {
	v := Variance{
		Actual:  actual,
		Budget:  budget,
		Amount:  actual.Sub(budget),
		Inverse: inverse,
	}

	if !budget.IsZero() {
		v.Percent = v.Amount.Div(budget).Mul(hundred)
	}

	adverse := v.Amount.IsPositive()
	if !inverse {
		adverse = v.Amount.IsNegative()
	}
	if adverse {
		v.Direction = Unfavorable
	} else {
		v.Direction = Favorable
	}

	return v
}

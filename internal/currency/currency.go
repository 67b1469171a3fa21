// Package currency converts base-currency amounts into display currencies
// and formats them. Conversion is presentation only: aggregation math
// always runs in base currency, and nothing here mutates stored amounts.
package currency

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/config"
)

// Presenter converts and formats amounts using an injected rate table.
type Presenter struct {
	rates config.RateTable
}

// NewPresenter creates a Presenter over a rate table.
func NewPresenter(rates config.RateTable) *Presenter {
	return &Presenter{rates: rates}
}

// Supports reports whether a currency code can be presented.
func (p *Presenter) Supports(code string) bool {
	_, ok := p.rates.Multiplier(code)
	return ok
}

// Convert returns a base-currency amount re-expressed in the display
// currency.
func (p *Presenter) Convert(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	m, ok := p.rates.Multiplier(code)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("unknown display currency %q", code)
	}
	return amount.Mul(m), nil
}

// Format converts a base-currency amount and renders it as a magnitude
// string in the display currency, with symbol, grouping, and the
// currency's minor-unit precision. The sign is the caller's concern:
// Format always renders the absolute value.
func (p *Presenter) Format(amount decimal.Decimal, code string) (string, error) {
	converted, err := p.Convert(amount, code)
	if err != nil {
		return "", err
	}
	// The money constructor is the one way to get a never-nil currency.
	cur := money.New(0, code).Currency()
	minor := converted.Abs().Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart()), nil
}

// Symbol returns the display symbol for a currency code.
func (p *Presenter) Symbol(code string) string {
	return money.New(0, code).Currency().Grapheme
}

// Codes returns the presentable currency codes, base currency first.
func (p *Presenter) Codes() []string {
	return p.rates.Codes()
}

package model

import "github.com/shopspring/decimal"

// QuoteStatus represents the lifecycle state of a sales quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "DRAFT"
	QuoteSent     QuoteStatus = "SENT"
	QuoteApproved QuoteStatus = "APPROVED"
	QuoteWon      QuoteStatus = "WON"
	QuoteLost     QuoteStatus = "LOST"
	QuoteDeclined QuoteStatus = "DECLINED"
	QuoteInvoiced QuoteStatus = "INVOICED"
	QuotePaid     QuoteStatus = "PAID"
)

// SaleType classifies the customer side of a quote.
type SaleType string

const (
	SaleExport   SaleType = "Export"
	SaleDomestic SaleType = "Domestic"
)

// Quote is a sales quote as recorded by the sales subsystem. The engine
// only ever reads quotes; it never creates or mutates them.
type Quote struct {
	Ref             string
	Status          QuoteStatus
	FinalSalesPrice decimal.Decimal // in the quote's own currency
	ForexRate       decimal.Decimal // base units per quote currency; zero = unset
	BOIActivity     bool            // revenue under the BOI incentive program
	SaleType        SaleType
	Customer        string
}

// Recognized reports whether the quote counts toward revenue.
func (q Quote) Recognized() bool {
	switch q.Status {
	case QuoteWon, QuoteInvoiced, QuotePaid:
		return true
	}
	return false
}

// AmountBase returns the sales price converted to base currency, using the
// quote's own forex rate when one was captured at quote time, otherwise
// the fallback rate.
func (q Quote) AmountBase(fallbackRate decimal.Decimal) decimal.Decimal {
	rate := q.ForexRate
	if rate.IsZero() {
		rate = fallbackRate
	}
	return q.FinalSalesPrice.Mul(rate)
}

package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteRecognized(t *testing.T) {
	tests := []struct {
		status QuoteStatus
		want   bool
	}{
		{QuoteDraft, false},
		{QuoteSent, false},
		{QuoteApproved, false},
		{QuoteWon, true},
		{QuoteLost, false},
		{QuoteDeclined, false},
		{QuoteInvoiced, true},
		{QuotePaid, true},
	}
	for _, tt := range tests {
		q := Quote{Status: tt.status}
		assert.Equal(t, tt.want, q.Recognized(), "Recognized(%s)", tt.status)
	}
}

func TestQuoteAmountBase(t *testing.T) {
	fallback := decimal.NewFromFloat(56.0)

	// Quote-time rate wins when set.
	q := Quote{FinalSalesPrice: decimal.NewFromInt(1000), ForexRate: decimal.NewFromFloat(58.5)}
	assert.True(t, q.AmountBase(fallback).Equal(decimal.NewFromInt(58500)))

	// Unset rate falls back.
	q = Quote{FinalSalesPrice: decimal.NewFromInt(1000)}
	assert.True(t, q.AmountBase(fallback).Equal(decimal.NewFromInt(56000)))
}

func TestOpportunityWeighted(t *testing.T) {
	o := Opportunity{EstimatedValue: decimal.NewFromInt(10000), Probability: decimal.NewFromInt(40)}
	assert.True(t, o.Weighted().Equal(decimal.NewFromInt(4000)))
}

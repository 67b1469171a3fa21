package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		actual  string
		budget  string
		inverse bool
		amount  string
		percent string
		want    Direction
	}{
		{"revenue over budget", "120", "100", false, "20", "20", Favorable},
		{"revenue under budget", "80", "100", false, "-20", "-20", Unfavorable},
		{"cost under budget", "80", "100", true, "-20", "-20", Favorable},
		{"cost over budget", "120", "100", true, "20", "20", Unfavorable},
		{"on budget revenue", "100", "100", false, "0", "0", Favorable},
		{"on budget cost", "100", "100", true, "0", "0", Favorable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compare(dec(tt.actual), dec(tt.budget), tt.inverse)
			assert.True(t, v.Amount.Equal(dec(tt.amount)), "amount: got %s", v.Amount)
			assert.True(t, v.Percent.Equal(dec(tt.percent)), "percent: got %s", v.Percent)
			assert.Equal(t, tt.want, v.Direction)
		})
	}
}

func TestCompare_ZeroBudget(t *testing.T) {
	v := Compare(dec("500"), dec("0"), false)
	assert.True(t, v.Amount.Equal(dec("500")))
	assert.True(t, v.Percent.IsZero(), "percent variance is 0 when budget is 0")
	assert.Equal(t, Favorable, v.Direction)
}

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_DiscountTiers(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		discount   float64
	}{
		{"high confidence", 95, 15},
		{"tier boundary 90", 90, 15},
		{"medium confidence", 80, 10},
		{"tier boundary 75", 75, 10},
		{"low confidence", 60, 5},
		{"tier boundary 50", 50, 5},
		{"below all tiers", 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote("doctor", tt.confidence, "", "")
			assert.Equal(t, tt.discount, q.DiscountPct)
			assert.InDelta(t, 100*(1-tt.discount/100), q.Amount, 1e-9)
			assert.Equal(t, "USD", q.Currency)
		})
	}
}

func TestQuote_INRForIndianCities(t *testing.T) {
	q := Quote("facial", 95, "delhi", "")
	assert.Equal(t, "INR", q.Currency)
	// 27 USD base, 15% off, converted at the fixed 82.0 rate.
	assert.InDelta(t, 1881.90, q.Amount, 0.01)

	q = Quote("facial", 95, "new york", "")
	assert.Equal(t, "USD", q.Currency)
	assert.InDelta(t, 22.95, q.Amount, 0.01)
}

func TestQuote_GoldLoyaltyStacksOnTier(t *testing.T) {
	q := Quote("doctor", 95, "", LoyaltyGold)
	assert.Equal(t, 20.0, q.DiscountPct)
	assert.InDelta(t, 80.0, q.Amount, 1e-9)

	q = Quote("doctor", 40, "", LoyaltyGold)
	assert.Equal(t, 5.0, q.DiscountPct)
}

func TestQuote_UnknownServiceUsesDefaultBase(t *testing.T) {
	q := Quote("astrology", 40, "", "")
	assert.InDelta(t, 50.0, q.Amount, 1e-9)
	assert.Equal(t, "astrology", q.Service)
}

func TestQuote_EmptyLocationIsUSD(t *testing.T) {
	q := Quote("spa", 95, "", "")
	assert.Equal(t, "USD", q.Currency)
	assert.InDelta(t, 42.50, q.Amount, 1e-9)
}

package booking

import (
	"math"

	"concierge/models"
	"concierge/services/lexicon"
)

// Base prices per canonical service, in USD.
var basePrices = map[string]float64{
	"spa":         50.0,
	"salon":       40.0,
	"doctor":      100.0,
	"head spa":    60.0,
	"facial":      27.0,
	"dental":      80.0,
	"hotel":       150.0,
	"travel":      80.0,
	"appointment": 30.0,
	"flight":      200.0,
}

const defaultBasePrice = 50.0

// Fixed demo conversion rate for INR locations.
const usdToINR = 82.0

// discountForConfidence maps the overall resolution confidence (0-100) to a
// discount tier: higher confidence means less rework risk, priced in.
func discountForConfidence(confidencePct float64) float64 {
	switch {
	case confidencePct >= 90:
		return 15.0
	case confidencePct >= 75:
		return 10.0
	case confidencePct >= 50:
		return 5.0
	default:
		return 0.0
	}
}

// LoyaltyGold adds a flat extra discount on top of the confidence tier.
const (
	LoyaltyGold         = "gold"
	goldLoyaltyDiscount = 5.0
)

// Quote computes an indicative price for a resolved service. Locations in
// the INR city table are quoted in INR at a fixed demo rate, otherwise USD.
func Quote(service string, confidencePct float64, location, loyaltyTier string) models.PriceQuote {
	base, ok := basePrices[service]
	if !ok {
		base = defaultBasePrice
	}
	discount := discountForConfidence(confidencePct)
	if loyaltyTier == LoyaltyGold {
		discount += goldLoyaltyDiscount
	}
	amount := round2(base * (1 - discount/100.0))

	currency := "USD"
	if location != "" && lexicon.IsIndianCity(location) {
		currency = "INR"
		amount = round2(amount * usdToINR)
	}

	return models.PriceQuote{
		Service:     service,
		Amount:      amount,
		DiscountPct: discount,
		Currency:    currency,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

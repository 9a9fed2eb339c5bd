// Package pricing is the single source of truth for booking price math.
// Every total shown anywhere in the funnel is computed here.
package pricing

import (
	"math"
	"time"
)

// Fixed rates applied at checkout. These are not configurable per venue.
const (
	ServiceFeeRate = 0.05
	TaxRate        = 0.10
)

// Nights returns the chargeable number of nights between check-in and
// check-out, floored to a minimum of one. A check-out at or before the
// check-in still charges one night.
func Nights(checkIn, checkOut time.Time) int {
	days := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// BaseTotal computes pricePerPerson x guests x nights.
func BaseTotal(pricePerPerson float64, guests, nights int) float64 {
	if guests < 1 {
		guests = 1
	}
	if nights < 1 {
		nights = 1
	}
	return pricePerPerson * float64(guests) * float64(nights)
}

// Quote is the checkout breakdown layered on top of the draft total.
type Quote struct {
	BaseTotal  float64
	ServiceFee float64
	Tax        float64
	FinalTotal float64
}

// NewQuote layers the fixed service fee and tax on a base total.
func NewQuote(base float64) Quote {
	fee := base * ServiceFeeRate
	tax := base * TaxRate
	return Quote{
		BaseTotal:  base,
		ServiceFee: fee,
		Tax:        tax,
		FinalTotal: base + fee + tax,
	}
}

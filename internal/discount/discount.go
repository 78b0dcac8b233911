// Package discount computes the final price of an item given a discount
// percentage. A discount only applies at or above Threshold.
package discount

import (
	"fmt"
	"math"
)

// Threshold is the minimum discount percentage, inclusive, that reduces a price.
const Threshold = 20.0

// Applies reports whether percent reaches the discount threshold.
func Applies(percent float64) bool {
	return percent >= Threshold
}

// Calculate returns the price after applying percent. Below the threshold the
// price is returned exactly as given.
func Calculate(price, percent float64) float64 {
	if !Applies(percent) {
		return price
	}
	amount := price * (percent / 100)
	return price - amount
}

// Round2 rounds x to two decimal places, halves away from zero. Values too
// large to scale by 100 are returned unchanged.
func Round2(x float64) float64 {
	scaled := x * 100
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / 100
}

// Quote is the outcome of a single discount calculation.
type Quote struct {
	Price   float64
	Percent float64
	Final   float64
	Applied bool
}

// NewQuote calculates the final price for price and percent.
func NewQuote(price, percent float64) Quote {
	return Quote{
		Price:   price,
		Percent: percent,
		Final:   Calculate(price, percent),
		Applied: Applies(percent),
	}
}

// String renders the quote as the line shown to the user.
func (q Quote) String() string {
	if q.Applied {
		return fmt.Sprintf("Final price after discount: $%.2f", Round2(q.Final))
	}
	return fmt.Sprintf("No discount applied. Original price: $%.2f", Round2(q.Price))
}

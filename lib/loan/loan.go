package loan

import (
	"fmt"
	"math"
)

// Calculate computes the monthly and total payment for a fixed-rate loan.
// The annual rate is given in percent (e.g. 6 for 6% p.a.) and is compounded
// monthly. A zero rate degenerates to simple division of the principal by the
// number of monthly periods. Both results are rounded to two decimal places.
//
// A term of zero months has no defined payment and returns an error, as do
// inputs whose amortization denominator collapses to zero (e.g. a rate of
// -100% p.a. per month). The formula is otherwise applied unguarded.
func Calculate(amount float64, years int, annualRate float64) (monthly, total float64, err error) {
	periods := years * 12
	if periods == 0 {
		return 0, 0, fmt.Errorf("division by zero: loan term of %d months", periods)
	}

	monthlyRate := (annualRate / 100.0) / 12.0
	if monthlyRate == 0 {
		monthly = amount / float64(periods)
	} else {
		monthly = (amount * monthlyRate) / (1 - math.Pow(1/(1+monthlyRate), float64(periods)))
	}
	if math.IsInf(monthly, 0) || math.IsNaN(monthly) {
		return 0, 0, fmt.Errorf("division by zero: payment is undefined for rate %g%% over %d months", annualRate, periods)
	}

	// total is derived from the unrounded monthly payment
	total = monthly * float64(periods)

	return round2(monthly), round2(total), nil
}

// round2 rounds to two decimal places, half away from zero
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

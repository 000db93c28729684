package loan

import (
	"math"
	"testing"
)

// TestCalculateAmortized checks Calculate against the standard amortization
// formula computed inline.
func TestCalculateAmortized(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		years  int
		rate   float64
	}{
		{"five year loan", 10000, 5, 6},
		{"thirty year mortgage", 250000, 30, 3.5},
		{"short high rate", 500, 1, 19.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly, total, err := Calculate(tt.amount, tt.years, tt.rate)
			if err != nil {
				t.Fatalf("Calculate returned error: %v", err)
			}

			r := (tt.rate / 100.0) / 12.0
			n := float64(tt.years * 12)
			wantMonthly := (tt.amount * r) / (1 - math.Pow(1/(1+r), n))
			wantTotal := wantMonthly * n

			if got, want := monthly, math.Round(wantMonthly*100)/100; got != want {
				t.Errorf("monthly payment = %v, want %v", got, want)
			}
			if got, want := total, math.Round(wantTotal*100)/100; got != want {
				t.Errorf("total payment = %v, want %v", got, want)
			}
		})
	}
}

// TestCalculateZeroRate checks the zero-interest degenerate case.
func TestCalculateZeroRate(t *testing.T) {
	monthly, total, err := Calculate(1200, 1, 0)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if monthly != 100 {
		t.Errorf("monthly payment = %v, want 100", monthly)
	}
	if total != 1200 {
		t.Errorf("total payment = %v, want 1200", total)
	}
}

// TestCalculateZeroTerm checks that a zero-month term fails instead of
// producing an infinite payment.
func TestCalculateZeroTerm(t *testing.T) {
	if _, _, err := Calculate(10000, 0, 6); err == nil {
		t.Fatal("expected error for zero-year term, got nil")
	}
}

// TestCalculateNonFinitePayment checks that inputs collapsing the
// amortization denominator to zero fail instead of producing Inf or NaN.
// At -2400% p.a. the monthly rate is -2, so (1/(1+r))^n is exactly 1 and
// the denominator vanishes.
func TestCalculateNonFinitePayment(t *testing.T) {
	monthly, total, err := Calculate(1000, 1, -2400)
	if err == nil {
		t.Fatal("expected error for non-finite payment, got nil")
	}
	if math.IsInf(monthly, 0) || math.IsNaN(monthly) || math.IsInf(total, 0) || math.IsNaN(total) {
		t.Errorf("Calculate returned non-finite results: monthly=%v total=%v", monthly, total)
	}
}

func TestCalculateRounding(t *testing.T) {
	monthly, _, err := Calculate(1000, 1, 0)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	// 1000/12 = 83.3333... must come back as exactly two decimals
	if monthly != 83.33 {
		t.Errorf("monthly payment = %v, want 83.33", monthly)
	}
}

package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_Calculate(t *testing.T) {
	calc := NewCalculator(Config{MinimumFee: 2, FeePercent: 1})

	tests := []struct {
		name   string
		amount int64
		want   int64
	}{
		{name: "zero amount pays the minimum", amount: 0, want: 2},
		{name: "small amount stays at the minimum", amount: 100, want: 2},
		{name: "fee covers the inflated total", amount: 1000, want: 11},
		{name: "large amount", amount: 1_000_000, want: 10100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Calculate(tt.amount))
		})
	}
}

func TestCalculator_MinimumFloor(t *testing.T) {
	calc := NewCalculator(Config{MinimumFee: 50, FeePercent: 1})

	for _, amount := range []int64{0, 1, 10, 100, 1000, 4900} {
		assert.GreaterOrEqual(t, calc.Calculate(amount), int64(50),
			"amount %d", amount)
	}
}

func TestCalculator_ReserveAlwaysMet(t *testing.T) {
	calc := NewCalculator(Config{MinimumFee: 2, FeePercent: 1})

	// The fee must cover the percentage of the full withdrawn total,
	// fee included, for every amount. 1% with ceiling rounding is
	// exact integer arithmetic: ceil(n/100) == (n+99)/100.
	for amount := int64(0); amount <= 100_000; amount += 37 {
		fee := calc.Calculate(amount)
		required := (amount + fee + 99) / 100
		assert.GreaterOrEqual(t, fee, required, "amount %d", amount)
	}
}

func TestCalculator_Monotonic(t *testing.T) {
	calc := NewCalculator(Config{MinimumFee: 2, FeePercent: 1})

	prev := calc.Calculate(0)
	for amount := int64(1); amount <= 50_000; amount += 13 {
		fee := calc.Calculate(amount)
		assert.GreaterOrEqual(t, fee, prev, "amount %d", amount)
		prev = fee
	}
}

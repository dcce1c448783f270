package fees

import "math"

// Config holds the withdrawal fee parameters. MinimumFee is an absolute
// floor in sats; FeePercent is the reserve percentage in (0,100).
type Config struct {
	MinimumFee int64
	FeePercent float64
}

// Calculator computes withdrawal fees. It is stateless and safe for
// concurrent use.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate returns the fee in sats for withdrawing amount. The fee must
// itself be funded from the withdrawn total, so the percentage is applied
// twice: once against the amount to get a provisional fee, then again
// against the amount inflated by that estimate. Rounding is always up so
// the reserve is never underfunded.
//
// Calculate(0) returns MinimumFee. The caller guarantees amount >= 0.
func (c *Calculator) Calculate(amount int64) int64 {
	provisional := c.percentOf(amount)
	return c.percentOf(amount + provisional)
}

func (c *Calculator) percentOf(amount int64) int64 {
	fee := int64(math.Ceil(float64(amount) * c.cfg.FeePercent / 100))
	if fee < c.cfg.MinimumFee {
		return c.cfg.MinimumFee
	}
	return fee
}

package config

// Production defaults for withdrawal fees and limits. Each can be
// overridden via the environment; see routes.SetupRoutes for the wiring.
const (
	DefaultMinimumFeeSats      = 10
	DefaultFeePercent          = 1.0
	DefaultMaxTipSats          = 1_000_000
	DefaultMaxTipsWithdrawable = 100
)

// FeeSettings returns the fee floor in sats and the reserve percentage.
func FeeSettings() (minimumFee int64, feePercent float64) {
	return GetInt64Env("MINIMUM_FEE_SATS", DefaultMinimumFeeSats),
		GetFloatEnv("FEE_PERCENT", DefaultFeePercent)
}

// WithdrawalSettings returns the aggregate sats cap and the tip count cap
// for a single withdrawal.
func WithdrawalSettings() (maxTipSats int64, maxTipsWithdrawable int) {
	return GetInt64Env("MAX_TIP_SATS", DefaultMaxTipSats),
		GetIntEnv("MAX_TIPS_WITHDRAWABLE", DefaultMaxTipsWithdrawable)
}

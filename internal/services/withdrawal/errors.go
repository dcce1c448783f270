package withdrawal

import "errors"

// Service errors
var (
	ErrNothingToWithdraw   = errors.New("no withdrawable tips")
	ErrFeeExceedsTotal     = errors.New("fee exceeds withdrawable total")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

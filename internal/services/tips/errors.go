package tips

import "errors"

// Service errors
var (
	ErrTipNotFound       = errors.New("tip not found")
	ErrNotClaimable      = errors.New("tip is not claimable")
	ErrTipExpired        = errors.New("tip has expired")
	ErrWrongPassphrase   = errors.New("wrong passphrase")
	ErrSelfClaim         = errors.New("cannot claim your own tip")
	ErrInsufficientFunds = errors.New("insufficient funds to create tip")
	ErrAmountRequired    = errors.New("either a sats or a fiat amount is required")
)

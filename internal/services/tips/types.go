package tips

import (
	"context"
	"time"

	"tipjar/internal/models"
)

// Default tip expiry when the tipper does not set one.
const DefaultExpiry = 21 * 24 * time.Hour

// CreateRequest describes a new tip. Amount is in sats; alternatively a
// fiat amount plus currency can be given and is converted at the current
// rate.
type CreateRequest struct {
	Amount       int64     `json:"amount"`
	FiatAmount   float64   `json:"fiat_amount"`
	FiatCurrency string    `json:"fiat_currency"`
	Note         string    `json:"note"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// CreatedTip carries the one-time claim credentials back to the tipper.
// The passphrase is not stored in plaintext anywhere else.
type CreatedTip struct {
	Tip        *models.Tip `json:"tip"`
	Passphrase string      `json:"passphrase"`
	ClaimURL   string      `json:"claim_url"`
}

// Cache is the invalidation hook the service needs after balance moves.
type Cache interface {
	InvalidateWallet(ctx context.Context, userID uint) error
	InvalidateLeaderboards(ctx context.Context) error
}

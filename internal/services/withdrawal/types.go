package withdrawal

import (
	"context"

	"tipjar/internal/models"
)

// Preview describes what a withdrawal would look like before it is executed.
type Preview struct {
	Tips   []models.Tip `json:"tips"`
	Total  int64        `json:"total"`
	Fee    int64        `json:"fee"`
	Payout int64        `json:"payout"`
}

// WalletCache is the cache invalidation hook the service needs after a debit.
type WalletCache interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

package withdrawal

import (
	"sort"

	"tipjar/internal/models"
)

// Limits caps what a single withdrawal may include.
type Limits struct {
	MaxTotal int64 // aggregate cap in sats
	MaxCount int   // maximum number of tips
}

// LimitTips selects the tips included in one withdrawal: largest amounts
// first, at most MaxCount of them, then the smallest of the selection are
// dropped until the sum fits MaxTotal. The sort is stable, so tips with
// equal amounts keep their input order. The input slice is not modified.
//
// An empty result is valid: it means no combination of tips fits the caps.
func LimitTips(tips []models.Tip, limits Limits) []models.Tip {
	selected := make([]models.Tip, len(tips))
	copy(selected, tips)

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Amount > selected[j].Amount
	})

	if limits.MaxCount >= 0 && len(selected) > limits.MaxCount {
		selected = selected[:limits.MaxCount]
	}

	var total int64
	for _, tip := range selected {
		total += tip.Amount
	}
	for len(selected) > 0 && total > limits.MaxTotal {
		total -= selected[len(selected)-1].Amount
		selected = selected[:len(selected)-1]
	}
	return selected
}

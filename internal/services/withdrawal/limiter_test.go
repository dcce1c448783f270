package withdrawal

import (
	"testing"

	"tipjar/internal/models"

	"github.com/stretchr/testify/assert"
)

func tipsOf(amounts ...int64) []models.Tip {
	tips := make([]models.Tip, len(amounts))
	for i, a := range amounts {
		tips[i].ID = uint(i + 1)
		tips[i].Amount = a
	}
	return tips
}

func amountsOf(tips []models.Tip) []int64 {
	amounts := make([]int64, len(tips))
	for i, t := range tips {
		amounts[i] = t.Amount
	}
	return amounts
}

func TestLimitTips(t *testing.T) {
	limits := Limits{MaxTotal: 1000, MaxCount: 3}

	tests := []struct {
		name string
		in   []models.Tip
		want []int64
	}{
		{
			name: "trims smallest until the cap fits",
			in:   tipsOf(500, 400, 300, 200),
			want: []int64{500, 400},
		},
		{
			name: "empty input",
			in:   nil,
			want: []int64{},
		},
		{
			name: "single tip over the cap yields nothing",
			in:   tipsOf(2000),
			want: []int64{},
		},
		{
			name: "everything fits",
			in:   tipsOf(100, 200, 300),
			want: []int64{300, 200, 100},
		},
		{
			name: "count cap applies before the sum cap",
			in:   tipsOf(100, 100, 100, 100, 100),
			want: []int64{100, 100, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LimitTips(tt.in, limits)
			assert.Equal(t, tt.want, amountsOf(got))
		})
	}
}

func TestLimitTips_StableForEqualAmounts(t *testing.T) {
	in := tipsOf(100, 100, 100, 100)
	got := LimitTips(in, Limits{MaxTotal: 1000, MaxCount: 3})

	// Equal amounts keep their input order.
	assert.Equal(t, []uint{1, 2, 3}, []uint{got[0].ID, got[1].ID, got[2].ID})
}

func TestLimitTips_DoesNotMutateInput(t *testing.T) {
	in := tipsOf(200, 500, 300)
	LimitTips(in, Limits{MaxTotal: 1000, MaxCount: 3})

	assert.Equal(t, []int64{200, 500, 300}, amountsOf(in))
}

func TestLimitTips_Caps(t *testing.T) {
	limits := Limits{MaxTotal: 1000, MaxCount: 3}

	inputs := [][]models.Tip{
		tipsOf(999, 998, 997, 5, 4, 3, 2, 1),
		tipsOf(1, 2, 3, 4, 5),
		tipsOf(1000),
		tipsOf(500, 500, 500),
	}

	for _, in := range inputs {
		got := LimitTips(in, limits)

		assert.LessOrEqual(t, len(got), limits.MaxCount)

		var total int64
		for _, tip := range got {
			total += tip.Amount
		}
		if len(got) > 0 {
			assert.LessOrEqual(t, total, limits.MaxTotal)
		}

		// Limiting an already limited selection changes nothing.
		assert.Equal(t, amountsOf(got), amountsOf(LimitTips(got, limits)))
	}
}

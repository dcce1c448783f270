package validation

const (
	// Amount limits in sats
	MinTipAmount = 1
	MaxTipAmount = 10_000_000

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxNoteLength  = 500
	MaxTitleLength = 120
)

package types

import "errors"

// Sentinel errors for Gilded Rose operations.
var (
	// ErrRulesInvalid indicates a ruleset does not tile the sell-by axis:
	// a gap, an overlap, a missing infinite endpoint, or a malformed interval.
	ErrRulesInvalid = errors.New("item rules invalid")

	// ErrNoMatchingInterval indicates a lookup found no interval for a sell_in
	// value. Compiled tables are total, so this only surfaces when compilation
	// was bypassed.
	ErrNoMatchingInterval = errors.New("no interval matches sell_in")
)

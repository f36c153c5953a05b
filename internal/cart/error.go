package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrNilProduct      = errors.New("product is required")

	// -- Merge Failures --
	ErrMergeAddItem    = errors.New("failed to push guest line to server")
	ErrMergeUpdateItem = errors.New("failed to raise server quantity for guest line")
	ErrMergeRefetch    = errors.New("failed to re-fetch cart after merge")
)

package checkout

import "errors"

var (
	ErrNotAuthenticated = errors.New("checkout requires an authenticated session")
	ErrEmptyCart        = errors.New("cart is empty")
)

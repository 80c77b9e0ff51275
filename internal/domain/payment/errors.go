package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
)

package service

import "errors"

// Business errors surfaced verbatim to the conversational layer. Validation
// and business-rule rejections never leave a partial mutation behind.
var (
	ErrInvalidAmount    = errors.New("amount must be greater than 0")
	ErrInvalidWeight    = errors.New("weight to sell must be greater than 0")
	ErrInvalidRiskLevel = errors.New("risk level must be one of: conservative, balanced, aggressive")
	ErrMissingIdentity  = errors.New("username and email are required")
	ErrNotFound         = errors.New("no investment found for this email")

	ErrInsufficientHoldings = errors.New("weight to sell exceeds gold holdings")
	ErrInsufficientAmount   = errors.New("sale exceeds invested amount")
)

// IsValidation reports whether err is the caller's fault (bad input or a
// business-rule rejection), as opposed to an unknown email or an internal
// fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrInvalidRiskLevel) ||
		errors.Is(err, ErrMissingIdentity) ||
		errors.Is(err, ErrInsufficientHoldings) ||
		errors.Is(err, ErrInsufficientAmount)
}

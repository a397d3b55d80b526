package domain

import "errors"

var (
	ErrPhoneRequired = errors.New("phone number is required")
	ErrInvalidWeight = errors.New("invalid weight")
)

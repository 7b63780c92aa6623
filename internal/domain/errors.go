package domain

import "errors"

var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrInvalidAmount    = errors.New("amount must be a finite non-negative number")
)

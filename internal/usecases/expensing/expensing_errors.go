package expensing

import "errors"

var (
	ErrAdvanceRecipientNotFound = errors.New("advance recipient not found")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidExpenseType       = errors.New("invalid expense type")
	ErrMissingDate              = errors.New("date is required")
)

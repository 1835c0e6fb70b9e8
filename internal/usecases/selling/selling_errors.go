package selling

import "errors"

var (
	ErrSalesRepNotFound   = errors.New("sales representative not found")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrMissingBillNumber  = errors.New("bill number is required")
	ErrInvalidPaymentType = errors.New("invalid payment type")
	ErrMissingDateTime    = errors.New("date and time are required")
)

package payroll

import "errors"

var (
	ErrInvalidPeriod  = errors.New("invalid pay period, expected YYYY-MM")
	ErrRecordNotFound = errors.New("payroll record not found")
)

package errors

import "errors"

var (
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrInvalidTenantData = errors.New("invalid tenant data")
	ErrInvalidHost       = errors.New("invalid host identifier")
)

package errors

import "errors"

var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrPrincipalNotFound = errors.New("principal not found")

	ErrDatabaseOperation = errors.New("database operation failed")
)

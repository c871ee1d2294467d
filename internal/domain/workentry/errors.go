package workentry

import "errors"

var (
	ErrWorkEntryNotFound       = errors.New("work entry not found")
	ErrInvalidStatusTransition = errors.New("only submitted work entries can be approved")
	ErrEmployeeNotFound        = errors.New("employee for work entry not found")
)

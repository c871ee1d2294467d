package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrMissingRequiredField = errors.New("name, position, department and email are required")
	ErrInvalidTier          = errors.New("tier must be excellent, good or needs-improvement")
)

package task

import "errors"

var (
	ErrTaskNotFound            = errors.New("task not found")
	ErrTaskAlreadyCompleted    = errors.New("task is already completed")
	ErrInvalidStatusTransition = errors.New("task status cannot be set directly; use complete for completed variants")
	ErrAssigneeNotFound        = errors.New("assigned employee not found")
)

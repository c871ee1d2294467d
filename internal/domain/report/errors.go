package report

import "errors"

var (
	ErrUnknownDepartment      = errors.New("department has no employees")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)

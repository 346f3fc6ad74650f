package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrInvalidEmployee    = errors.New("invalid employee")
	ErrReportsDisabled    = errors.New("report export to disk is not configured")
	ErrSchedulingDisabled = errors.New("report scheduling is not configured")
	ErrReportNotFound     = errors.New("report job not found")
	ErrInvalidFormat      = errors.New("unsupported report format")
)

// SchedulingNotice is shown to users when scheduling is unavailable.
const SchedulingNotice = "Report scheduling requires email integration. Contact admin to configure."

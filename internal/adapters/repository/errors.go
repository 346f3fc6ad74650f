package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound          = errors.New("employee not found")
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

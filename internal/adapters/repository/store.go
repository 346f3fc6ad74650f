// Package repository defines the employee store interface and its in-memory implementation.
package repository

import (
	"context"

	"github.com/okian/talentiq/internal/domain/model"
)

// Store provides read/write access to the employee roster.
type Store interface {
	// List returns a copy of every employee in insertion order.
	List(ctx context.Context) []model.Employee
	// Get returns a copy of one employee or ErrNotFound.
	Get(ctx context.Context, id string) (model.Employee, error)
	// Add assigns a fresh id to e, clamps it and appends it to the roster.
	Add(ctx context.Context, e model.Employee) (model.Employee, error)
	// Remove deletes an employee. Unknown ids are a no-op and report false.
	Remove(ctx context.Context, id string) bool
	// Update shallow-merges p into the employee with the given id.
	// Returns ErrNotFound if the id is unknown.
	Update(ctx context.Context, id string, p model.EmployeePatch) (model.Employee, error)

	// Refresh waits the configured delay and then perturbs every attrition risk.
	// Returns ErrRefreshInProgress if another refresh is running.
	Refresh(ctx context.Context) error
	// StartRefresh runs Refresh in the background. It reports false if one is already running.
	StartRefresh() bool
	// IsRefreshing reports whether a refresh is running.
	IsRefreshing() bool

	// Count returns the number of employees on the roster.
	Count(ctx context.Context) int
}

/*
store.go - Persistence interface for employee records

PURPOSE:
  Defines the interface between the domain logic and storage. A Store only
  round-trips Employee records; balances are always recomputed with
  ComputeStats and never persisted.

IMPLEMENTATIONS:
  - store/memory: In-memory, for tests and throwaway runs
  - store/sqlite: SQLite (default for the server)
  - store/kv:     JSON document under a single key in Redis (or a map)

INITIALIZATION:
  Stores start empty. Seed (seed.go) is the explicit step that fills an
  empty store with sample employees; nothing seeds lazily on first read.
*/
package vacation

import "context"

// Store persists employees and their vacation requests.
type Store interface {
	// ListEmployees returns every employee ordered by ID.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// GetEmployee returns ErrEmployeeNotFound if id is unknown.
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)

	// SaveEmployee inserts or replaces emp, requests included.
	SaveEmployee(ctx context.Context, emp Employee) error

	// AddRequest appends req to the employee's requests.
	// Returns ErrEmployeeNotFound if id is unknown.
	AddRequest(ctx context.Context, id EmployeeID, req Request) error

	// Reset removes all employees.
	Reset(ctx context.Context) error
}

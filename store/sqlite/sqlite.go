/*
Package sqlite provides a SQLite-backed implementation of vacation.Store.

PURPOSE:
  Persists employees and their vacation requests. Balances are not stored;
  they are recomputed from requests by vacation.ComputeStats.

KEY TABLES:
  employees:         One row per employee (birthday as MM-DD, start date)
  vacation_requests: One row per logged request, keyed by (employee_id, id)

REQUEST ORDER:
  Requests are returned in insertion order (rowid). Order decides which
  birthday-month request absorbs the bonus, so it must survive a round trip.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety and a single pooled connection, so an
  ":memory:" database is shared by every caller of the same Store.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) and foreign keys enabled.

USAGE:
  store, err := sqlite.New("./data/vacation.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New().
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// Store implements vacation.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ vacation.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		birthday TEXT NOT NULL,
		start_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS vacation_requests (
		id TEXT NOT NULL,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		days INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (employee_id, id)
	);

	-- Year-scoped lookups for a single employee
	CREATE INDEX IF NOT EXISTS idx_vacation_requests_employee_date
		ON vacation_requests(employee_id, date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

// ListEmployees returns all employees with their requests, ordered by ID.
func (s *Store) ListEmployees(ctx context.Context) ([]vacation.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, birthday, start_date FROM employees ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []vacation.Employee{}
	index := make(map[vacation.EmployeeID]int)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		index[emp.ID] = len(employees)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Release the only pooled connection before the next query.
	rows.Close()

	reqRows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, id, date, days FROM vacation_requests ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer reqRows.Close()

	for reqRows.Next() {
		var employeeID string
		req, err := scanRequest(reqRows, &employeeID)
		if err != nil {
			return nil, err
		}
		if i, ok := index[vacation.EmployeeID(employeeID)]; ok {
			employees[i].Requests = append(employees[i].Requests, req)
		}
	}

	return employees, reqRows.Err()
}

// GetEmployee retrieves an employee by ID.
func (s *Store) GetEmployee(ctx context.Context, id vacation.EmployeeID) (vacation.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, birthday, start_date FROM employees WHERE id = ?
	`, id)
	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return vacation.Employee{}, vacation.ErrEmployeeNotFound
	}
	if err != nil {
		return vacation.Employee{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, id, date, days FROM vacation_requests
		WHERE employee_id = ? ORDER BY rowid
	`, id)
	if err != nil {
		return vacation.Employee{}, fmt.Errorf("failed to load requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		req, err := scanRequest(rows, &employeeID)
		if err != nil {
			return vacation.Employee{}, err
		}
		emp.Requests = append(emp.Requests, req)
	}

	return emp, rows.Err()
}

// SaveEmployee upserts the employee row and replaces its requests atomically.
func (s *Store) SaveEmployee(ctx context.Context, emp vacation.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO employees (id, name, birthday, start_date, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				birthday = excluded.birthday,
				start_date = excluded.start_date
		`,
			emp.ID,
			emp.Name,
			emp.Birthday.String(),
			emp.StartDate.String(),
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to save employee: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM vacation_requests WHERE employee_id = ?`, emp.ID); err != nil {
			return fmt.Errorf("failed to clear requests: %w", err)
		}

		for _, req := range emp.Requests {
			if err := insertRequest(ctx, tx, emp.ID, req); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddRequest appends a request to an existing employee.
func (s *Store) AddRequest(ctx context.Context, id vacation.EmployeeID, req vacation.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees WHERE id = ?`, id).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			return vacation.ErrEmployeeNotFound
		}
		return insertRequest(ctx, tx, id, req)
	})
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"vacation_requests", "employees"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to reset %s: %w", table, err)
			}
		}
		return nil
	})
}

// Helper functions

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func insertRequest(ctx context.Context, tx *sql.Tx, employeeID vacation.EmployeeID, req vacation.Request) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO vacation_requests (id, employee_id, date, days, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		req.ID,
		employeeID,
		req.Date.String(),
		req.Days,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("duplicate request %q for %s: %w", req.ID, employeeID, err)
		}
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (vacation.Employee, error) {
	var id, name, birthday, startDate string
	if err := row.Scan(&id, &name, &birthday, &startDate); err != nil {
		return vacation.Employee{}, err
	}

	bd, err := vacation.ParseMonthDay(birthday)
	if err != nil {
		return vacation.Employee{}, fmt.Errorf("employee %s: %w", id, err)
	}
	start, err := vacation.ParseDate(startDate)
	if err != nil {
		return vacation.Employee{}, fmt.Errorf("employee %s: %w", id, err)
	}

	return vacation.Employee{
		ID:        vacation.EmployeeID(id),
		Name:      name,
		Birthday:  bd,
		StartDate: start,
		Requests:  []vacation.Request{},
	}, nil
}

func scanRequest(row scanner, employeeID *string) (vacation.Request, error) {
	var req vacation.Request
	var date string
	if err := row.Scan(employeeID, &req.ID, &date, &req.Days); err != nil {
		return vacation.Request{}, err
	}
	d, err := vacation.ParseDate(date)
	if err != nil {
		return vacation.Request{}, fmt.Errorf("request %s: %w", req.ID, err)
	}
	req.Date = d
	return req, nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

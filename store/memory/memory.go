// Package memory provides an in-memory vacation.Store (for testing/dev).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// Store keeps employees in a map guarded by a RWMutex. Records are cloned on
// the way in and out so callers never share request slices with the store.
type Store struct {
	mu        sync.RWMutex
	employees map[vacation.EmployeeID]vacation.Employee
}

var _ vacation.Store = (*Store)(nil)

func New() *Store {
	return &Store{employees: make(map[vacation.EmployeeID]vacation.Employee)}
}

func (s *Store) ListEmployees(_ context.Context) ([]vacation.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]vacation.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		result = append(result, emp.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) GetEmployee(_ context.Context, id vacation.EmployeeID) (vacation.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return vacation.Employee{}, vacation.ErrEmployeeNotFound
	}
	return emp.Clone(), nil
}

func (s *Store) SaveEmployee(_ context.Context, emp vacation.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees[emp.ID] = emp.Clone()
	return nil
}

func (s *Store) AddRequest(_ context.Context, id vacation.EmployeeID, req vacation.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[id]
	if !ok {
		return vacation.ErrEmployeeNotFound
	}
	emp = emp.Clone()
	emp.Requests = append(emp.Requests, req)
	s.employees[id] = emp
	return nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = make(map[vacation.EmployeeID]vacation.Employee)
	return nil
}

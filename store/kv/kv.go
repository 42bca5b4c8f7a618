/*
Package kv stores every employee as one JSON document under a single key.

FORMAT:
  Key:   vacation_tracker_data_v1
  Value: [{"id":"emp-001","name":"Alice Johnson","birthday":"02-15",
           "startDate":"2024-01-01","requests":[{"id":"req-1",
           "date":"2026-01-20","days":2}]}, ...]

  A missing key reads as an empty store.

CONCURRENCY:
  Writes are read-modify-write of the whole document under a process-local
  mutex. Two processes writing the same key can lose updates.
*/
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// DefaultKey is the key the document is stored under.
const DefaultKey = "vacation_tracker_data_v1"

type Store struct {
	cache Cache
	key   string
	mu    sync.RWMutex
}

var _ vacation.Store = (*Store)(nil)

// New returns a Store over cache using DefaultKey.
func New(cache Cache) *Store {
	return &Store{cache: cache, key: DefaultKey}
}

// WithKey returns a Store over the same cache using a different key.
func (s *Store) WithKey(key string) *Store {
	return &Store{cache: s.cache, key: key}
}

// =============================================================================
// DOCUMENT SHAPE
// =============================================================================

type employeeDoc struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Birthday  string       `json:"birthday"`
	StartDate string       `json:"startDate"`
	Requests  []requestDoc `json:"requests"`
}

type requestDoc struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Days int    `json:"days"`
}

func toDoc(emp vacation.Employee) employeeDoc {
	doc := employeeDoc{
		ID:        string(emp.ID),
		Name:      emp.Name,
		Birthday:  emp.Birthday.String(),
		StartDate: emp.StartDate.String(),
		Requests:  make([]requestDoc, len(emp.Requests)),
	}
	for i, r := range emp.Requests {
		doc.Requests[i] = requestDoc{ID: r.ID, Date: r.Date.String(), Days: r.Days}
	}
	return doc
}

func fromDoc(doc employeeDoc) (vacation.Employee, error) {
	bd, err := vacation.ParseMonthDay(doc.Birthday)
	if err != nil {
		return vacation.Employee{}, fmt.Errorf("employee %s: %w", doc.ID, err)
	}
	start, err := vacation.ParseDate(doc.StartDate)
	if err != nil {
		return vacation.Employee{}, fmt.Errorf("employee %s: %w", doc.ID, err)
	}

	emp := vacation.Employee{
		ID:        vacation.EmployeeID(doc.ID),
		Name:      doc.Name,
		Birthday:  bd,
		StartDate: start,
		Requests:  make([]vacation.Request, 0, len(doc.Requests)),
	}
	for _, r := range doc.Requests {
		d, err := vacation.ParseDate(r.Date)
		if err != nil {
			return vacation.Employee{}, fmt.Errorf("employee %s request %s: %w", doc.ID, r.ID, err)
		}
		emp.Requests = append(emp.Requests, vacation.Request{ID: r.ID, Date: d, Days: r.Days})
	}
	return emp, nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

func (s *Store) load(ctx context.Context) ([]vacation.Employee, error) {
	raw, found, err := s.cache.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	if !found {
		return []vacation.Employee{}, nil
	}

	var docs []employeeDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.key, err)
	}

	employees := make([]vacation.Employee, 0, len(docs))
	for _, doc := range docs {
		emp, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func (s *Store) save(ctx context.Context, employees []vacation.Employee) error {
	docs := make([]employeeDoc, len(employees))
	for i, emp := range employees {
		docs[i] = toDoc(emp)
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}
	if err := s.cache.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

// =============================================================================
// vacation.Store
// =============================================================================

func (s *Store) ListEmployees(ctx context.Context) ([]vacation.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (s *Store) GetEmployee(ctx context.Context, id vacation.EmployeeID) (vacation.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees, err := s.load(ctx)
	if err != nil {
		return vacation.Employee{}, err
	}
	for _, emp := range employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return vacation.Employee{}, vacation.ErrEmployeeNotFound
}

func (s *Store) SaveEmployee(ctx context.Context, emp vacation.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range employees {
		if employees[i].ID == emp.ID {
			employees[i] = emp
			return s.save(ctx, employees)
		}
	}
	return s.save(ctx, append(employees, emp))
}

func (s *Store) AddRequest(ctx context.Context, id vacation.EmployeeID, req vacation.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range employees {
		if employees[i].ID == id {
			employees[i].Requests = append(employees[i].Requests, req)
			return s.save(ctx, employees)
		}
	}
	return vacation.ErrEmployeeNotFound
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Del(ctx, s.key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.key, err)
	}
	return nil
}

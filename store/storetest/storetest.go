// Package storetest holds the behavior every vacation.Store must share.
// Each implementation runs it from its own tests via Run.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// Run executes the shared suite against stores built by newStore. newStore is
// called once per test and must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) vacation.Store) {
	suite.Run(t, &storeSuite{newStore: newStore})
}

type storeSuite struct {
	suite.Suite
	newStore func(t *testing.T) vacation.Store
	store    vacation.Store
	ctx      context.Context
}

func (s *storeSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func alice() vacation.Employee {
	return vacation.Employee{
		ID:        "emp-a",
		Name:      "Alice",
		Birthday:  vacation.MonthDay{Month: time.February, Day: 15},
		StartDate: vacation.NewDate(2024, time.January, 1),
		Requests: []vacation.Request{
			{ID: "req-a1", Date: vacation.NewDate(2024, time.February, 20), Days: 1},
		},
	}
}

func (s *storeSuite) TestEmptyStore() {
	employees, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Empty(employees)

	_, err = s.store.GetEmployee(s.ctx, "emp-missing")
	s.ErrorIs(err, vacation.ErrEmployeeNotFound)
}

func (s *storeSuite) TestSaveAndGetRoundTrip() {
	want := alice()
	s.Require().NoError(s.store.SaveEmployee(s.ctx, want))

	got, err := s.store.GetEmployee(s.ctx, want.ID)
	s.Require().NoError(err)
	s.Equal(want.ID, got.ID)
	s.Equal(want.Name, got.Name)
	s.Equal(want.Birthday, got.Birthday)
	s.True(want.StartDate.Equal(got.StartDate))
	s.Require().Len(got.Requests, 1)
	s.Equal("req-a1", got.Requests[0].ID)
	s.True(want.Requests[0].Date.Equal(got.Requests[0].Date))
	s.Equal(1, got.Requests[0].Days)
}

func (s *storeSuite) TestSaveReplacesExisting() {
	emp := alice()
	s.Require().NoError(s.store.SaveEmployee(s.ctx, emp))

	emp.Name = "Alice Cooper"
	emp.Requests = nil
	s.Require().NoError(s.store.SaveEmployee(s.ctx, emp))

	got, err := s.store.GetEmployee(s.ctx, emp.ID)
	s.Require().NoError(err)
	s.Equal("Alice Cooper", got.Name)
	s.Empty(got.Requests)

	all, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *storeSuite) TestListOrderedByID() {
	for _, id := range []vacation.EmployeeID{"emp-003", "emp-001", "emp-002"} {
		emp := alice()
		emp.ID = id
		emp.Requests = nil
		s.Require().NoError(s.store.SaveEmployee(s.ctx, emp))
	}

	employees, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(employees, 3)
	s.Equal(vacation.EmployeeID("emp-001"), employees[0].ID)
	s.Equal(vacation.EmployeeID("emp-002"), employees[1].ID)
	s.Equal(vacation.EmployeeID("emp-003"), employees[2].ID)
}

func (s *storeSuite) TestAddRequest() {
	s.Require().NoError(s.store.SaveEmployee(s.ctx, alice()))

	r := vacation.Request{ID: "req-a2", Date: vacation.NewDate(2024, time.March, 4), Days: 3}
	s.Require().NoError(s.store.AddRequest(s.ctx, "emp-a", r))

	got, err := s.store.GetEmployee(s.ctx, "emp-a")
	s.Require().NoError(err)
	s.Require().Len(got.Requests, 2)

	stats := vacation.ComputeStats(got, vacation.NewDate(2024, time.March, 10))
	s.Equal(3, stats.RegularUsed)
	s.True(stats.BonusUsed)
}

func (s *storeSuite) TestAddRequestUnknownEmployee() {
	r := vacation.Request{ID: "req-x", Date: vacation.NewDate(2024, time.March, 4), Days: 1}
	err := s.store.AddRequest(s.ctx, "emp-missing", r)
	s.ErrorIs(err, vacation.ErrEmployeeNotFound)
}

func (s *storeSuite) TestConcurrentAddRequest() {
	s.Require().NoError(s.store.SaveEmployee(s.ctx, alice()))

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := vacation.Request{
				ID:   fmt.Sprintf("req-c%02d", i),
				Date: vacation.NewDate(2024, time.June, 1+i%28),
				Days: 1,
			}
			errs <- s.store.AddRequest(s.ctx, "emp-a", r)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.store.GetEmployee(s.ctx, "emp-a")
	s.Require().NoError(err)
	s.Len(got.Requests, n+1)
}

func (s *storeSuite) TestReturnedRecordsAreCopies() {
	s.Require().NoError(s.store.SaveEmployee(s.ctx, alice()))

	got, err := s.store.GetEmployee(s.ctx, "emp-a")
	s.Require().NoError(err)
	got.Requests[0].Days = 99

	again, err := s.store.GetEmployee(s.ctx, "emp-a")
	s.Require().NoError(err)
	s.Equal(1, again.Requests[0].Days)
}

func (s *storeSuite) TestReset() {
	s.Require().NoError(s.store.SaveEmployee(s.ctx, alice()))
	s.Require().NoError(s.store.Reset(s.ctx))

	employees, err := s.store.ListEmployees(s.ctx)
	s.Require().NoError(err)
	s.Empty(employees)

	seeded, err := vacation.Seed(s.ctx, s.store, 2026)
	s.Require().NoError(err)
	s.True(seeded)
}

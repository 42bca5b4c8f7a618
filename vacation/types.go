/*
Package vacation implements vacation entitlement tracking.

PURPOSE:
  Tracks how many vacation days an employee has earned, how many they have
  taken, and whether their birthday bonus day is still claimable. Balances
  are never stored; they are derived on demand from the employee's requests
  and a reference date (see stats.go).

KEY CONCEPTS IN THIS FILE (types.go):
  - MonthDay: A birthday (month + day, no year)
  - Date: A calendar date with no time-of-day component
  - Request: A logged vacation request (date + number of days)
  - Employee: The record a Store persists

VALIDATION:
  Value types are validated once, at construction (ParseMonthDay, ParseDate,
  NewEmployee, NewRequest). Everything downstream, ComputeStats in
  particular, assumes well-formed values.

SEE ALSO:
  - stats.go: Balance calculation
  - policy.go: Accrual and bonus rules
  - store.go: Persistence interface
*/
package vacation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// =============================================================================
// MONTH-DAY - Birthday without a year
// =============================================================================

// MonthDay is a recurring calendar day, e.g. a birthday.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD". February 29 is accepted.
func ParseMonthDay(s string) (MonthDay, error) {
	// 2000 is a leap year so 02-29 survives the round trip.
	t, err := time.Parse(dateLayout, "2000-"+strings.TrimSpace(s))
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, s)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (md MonthDay) String() string { return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day) }

// =============================================================================
// DATE - Calendar date, UTC midnight
// =============================================================================

type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Equal(o Date) bool { return d.Time.Equal(o.Time) }
func (d Date) String() string    { return d.Time.Format(dateLayout) }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string

func newEmployeeID() EmployeeID { return EmployeeID("emp-" + uuid.NewString()) }
func newRequestID() string      { return "req-" + uuid.NewString() }

// =============================================================================
// REQUEST / EMPLOYEE
// =============================================================================

// Request is a logged vacation request. All Days are attributed to the
// calendar month of Date.
type Request struct {
	ID   string
	Date Date
	Days int
}

// NewRequest validates date and days and returns a request with a fresh ID.
// ComputeStats itself tolerates any Days value.
func NewRequest(date string, days int) (Request, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Request{}, err
	}
	if days <= 0 {
		return Request{}, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}
	return Request{ID: newRequestID(), Date: d, Days: days}, nil
}

// Employee is the persisted employee record.
//
// StartDate is recorded but does not influence accrual.
type Employee struct {
	ID        EmployeeID
	Name      string
	Birthday  MonthDay
	StartDate Date
	Requests  []Request
}

// NewEmployee validates the raw fields and returns an employee with a fresh ID
// and no requests.
func NewEmployee(name, birthday, startDate string) (Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Employee{}, fmt.Errorf("%w: name is required", ErrInvalidEmployee)
	}
	bd, err := ParseMonthDay(birthday)
	if err != nil {
		return Employee{}, err
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		ID:        newEmployeeID(),
		Name:      name,
		Birthday:  bd,
		StartDate: start,
		Requests:  []Request{},
	}, nil
}

// Clone returns a copy that shares no request slice with e.
func (e Employee) Clone() Employee {
	out := e
	out.Requests = append([]Request(nil), e.Requests...)
	return out
}

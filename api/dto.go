/*
dto.go - Data Transfer Objects for API requests and responses

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry validator/v10 struct tags for presence and shape.
  Semantic checks (real calendar dates, month ranges) happen when the
  handler builds domain values with vacation.NewEmployee / NewRequest.
*/
package api

import (
	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Birthday  string       `json:"birthday"`
	StartDate string       `json:"start_date"`
	Requests  []RequestDTO `json:"requests"`
	Stats     *StatsDTO    `json:"stats,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Birthday  string `json:"birthday" validate:"required,len=5"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

// RequestDTO is a logged vacation request.
type RequestDTO struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Days int    `json:"days"`
}

// AddRequestRequest logs vacation days for an employee.
type AddRequestRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Days int    `json:"days" validate:"gt=0"`
}

// StatsDTO is the balance of one employee as of a date.
type StatsDTO struct {
	AsOf                  string `json:"as_of"`
	BirthdayMonth         string `json:"birthday_month"`
	RegularAccrued        int    `json:"regular_accrued"`
	RegularUsed           int    `json:"regular_used"`
	RegularBalance        int    `json:"regular_balance"`
	RegularBalanceDisplay string `json:"regular_balance_display"`
	BonusUsed             bool   `json:"bonus_used"`
	BonusAvailable        int    `json:"bonus_available"`
	TotalBalance          int    `json:"total_balance"`
	TotalBalanceDisplay   string `json:"total_balance_display"`
	IsBirthdayMonthNow    bool   `json:"is_birthday_month_now"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toEmployeeDTO(emp vacation.Employee) EmployeeDTO {
	reqs := make([]RequestDTO, len(emp.Requests))
	for i, r := range emp.Requests {
		reqs[i] = toRequestDTO(r)
	}
	return EmployeeDTO{
		ID:        string(emp.ID),
		Name:      emp.Name,
		Birthday:  emp.Birthday.String(),
		StartDate: emp.StartDate.String(),
		Requests:  reqs,
	}
}

func toRequestDTO(r vacation.Request) RequestDTO {
	return RequestDTO{ID: r.ID, Date: r.Date.String(), Days: r.Days}
}

func toStatsDTO(emp vacation.Employee, asOf vacation.Date) *StatsDTO {
	s := vacation.ComputeStats(emp, asOf)
	return &StatsDTO{
		AsOf:                  asOf.String(),
		BirthdayMonth:         emp.Birthday.Month.String(),
		RegularAccrued:        s.RegularAccrued,
		RegularUsed:           s.RegularUsed,
		RegularBalance:        s.RegularBalance,
		RegularBalanceDisplay: vacation.FormatBalance(s.RegularBalance),
		BonusUsed:             s.BonusUsed,
		BonusAvailable:        s.BonusAvailable,
		TotalBalance:          s.TotalBalance,
		TotalBalanceDisplay:   vacation.FormatBalance(s.TotalBalance),
		IsBirthdayMonthNow:    s.IsBirthdayMonthNow,
	}
}

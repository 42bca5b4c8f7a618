package vacation

import (
	"context"
	"fmt"
	"time"
)

// SeedEmployees returns the sample employees used for demos. Bob's single
// request falls on January 20 of year.
func SeedEmployees(year int) []Employee {
	return []Employee{
		{
			ID:        "emp-001",
			Name:      "Alice Johnson",
			Birthday:  MonthDay{Month: time.February, Day: 15},
			StartDate: NewDate(2024, time.January, 1),
			Requests:  []Request{},
		},
		{
			ID:        "emp-002",
			Name:      "Bob Smith",
			Birthday:  MonthDay{Month: time.May, Day: 22},
			StartDate: NewDate(2023, time.November, 20),
			Requests: []Request{
				{ID: "req-1", Date: NewDate(year, time.January, 20), Days: 2},
			},
		},
		{
			ID:        "emp-003",
			Name:      "Charlie Brown",
			Birthday:  MonthDay{Month: time.December, Day: 1},
			StartDate: NewDate(2024, time.March, 1),
			Requests:  []Request{},
		},
	}
}

// Seed writes SeedEmployees(year) into store if it holds no employees.
// Returns true if anything was written.
func Seed(ctx context.Context, store Store, year int) (bool, error) {
	existing, err := store.ListEmployees(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, emp := range SeedEmployees(year) {
		if err := store.SaveEmployee(ctx, emp); err != nil {
			return false, fmt.Errorf("failed to seed employee %s: %w", emp.ID, err)
		}
	}
	return true, nil
}

/*
scenarios.go - Demo scenario loaders

PURPOSE:
	Replaces the store contents with a small, known set of employees so a
	frontend or a person with curl can see each balance rule in action.
	Request dates are placed in the clock's current year, so the scenarios
	stay meaningful without editing.

AVAILABLE SCENARIOS:

	sample:           The three default sample employees
	regular-accrual:  No requests; balance grows by 2 each month
	birthday-bonus:   Born in February, nothing taken (check with as_of=YYYY-02-15)
	bonus-used:       One February day taken, covered by the bonus
	negative-balance: Five days taken in January with two earned

USAGE VIA API:

	GET  /api/scenarios
	POST /api/scenarios/load  {"scenario_id": "bonus-used"}

NOTE:

	Loading a scenario resets the store. Only use in development/demo environments.
*/
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// AsOf is the month-day worth evaluating the scenario at, in the loaded year.
	AsOf string `json:"as_of"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}

type scenario struct {
	ScenarioDTO
	employees func(year int) []vacation.Employee
}

var scenarios = []scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "sample",
			Name:        "Sample Team",
			Description: "Alice (Feb), Bob (May, 2 days in January) and Charlie (Dec)",
			AsOf:        "02-15",
		},
		employees: vacation.SeedEmployees,
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "regular-accrual",
			Name:        "Regular Accrual",
			Description: "July birthday, nothing taken: 2 days per month so far",
			AsOf:        "02-15",
		},
		employees: func(year int) []vacation.Employee {
			return []vacation.Employee{scenarioEmployee("emp-accrual", "Pat Accrual", time.July, 10)}
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "birthday-bonus",
			Name:        "Birthday Bonus",
			Description: "February birthday, nothing taken: bonus claimable during February only",
			AsOf:        "02-15",
		},
		employees: func(year int) []vacation.Employee {
			return []vacation.Employee{scenarioEmployee("emp-bonus", "Robin Bonus", time.February, 10)}
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "bonus-used",
			Name:        "Bonus Used",
			Description: "February birthday, one day taken on Feb 20 and covered by the bonus",
			AsOf:        "02-25",
		},
		employees: func(year int) []vacation.Employee {
			emp := scenarioEmployee("emp-bonus-used", "Sam Bonus", time.February, 10)
			emp.Requests = []vacation.Request{
				{ID: "req-bonus", Date: vacation.NewDate(year, time.February, 20), Days: 1},
			}
			return []vacation.Employee{emp}
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "negative-balance",
			Name:        "Negative Balance",
			Description: "Five days taken in January with only two earned",
			AsOf:        "01-25",
		},
		employees: func(year int) []vacation.Employee {
			emp := scenarioEmployee("emp-negative", "Kim Negative", time.July, 10)
			emp.Requests = []vacation.Request{
				{ID: "req-negative", Date: vacation.NewDate(year, time.January, 20), Days: 5},
			}
			return []vacation.Employee{emp}
		},
	},
}

func scenarioEmployee(id vacation.EmployeeID, name string, month time.Month, day int) vacation.Employee {
	return vacation.Employee{
		ID:        id,
		Name:      name,
		Birthday:  vacation.MonthDay{Month: month, Day: day},
		StartDate: vacation.NewDate(2024, time.January, 1),
		Requests:  []vacation.Request{},
	}
}

func findScenario(id string) (scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return scenario{}, false
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentScenario returns the currently loaded scenario, or null.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	current := h.currentScenario
	h.mu.Unlock()

	s, ok := findScenario(current)
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, s.ScenarioDTO)
}

// LoadScenario resets the store and loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if !h.decode(w, r, &req) {
		return
	}

	s, ok := findScenario(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", fmt.Errorf("scenario %q", req.ScenarioID))
		return
	}

	if err := h.loadScenario(r.Context(), s); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": s.ID})
}

func (h *Handler) loadScenario(ctx context.Context, s scenario) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.currentScenario = ""
	if err := h.Store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	for _, emp := range s.employees(vacation.Today(h.Clock).Year()) {
		if err := h.Store.SaveEmployee(ctx, emp); err != nil {
			return fmt.Errorf("failed to save %s: %w", emp.ID, err)
		}
	}
	h.currentScenario = s.ID
	return nil
}

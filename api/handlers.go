/*
handlers.go - HTTP API handlers for the vacation tracker

ENDPOINTS:
  Employees:
    GET    /api/employees                 List employees with stats
    POST   /api/employees                 Create employee
    GET    /api/employees/{id}            Employee with requests and stats
    GET    /api/employees/{id}/stats      Stats only
    POST   /api/employees/{id}/requests   Log a vacation request

  Scenarios:
    GET    /api/scenarios                 List demo scenarios
    GET    /api/scenarios/current         Currently loaded scenario
    POST   /api/scenarios/load            Load a demo scenario

  Admin:
    POST   /api/reset                     Clear the store and re-seed

REFERENCE DATE:
  Every stats-bearing endpoint accepts ?as_of=YYYY-MM-DD. Without it the
  handler's Clock decides "today".

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Employee not found
  - 500: Internal errors
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store vacation.Store
	Clock vacation.Clock

	validate *validator.Validate

	// Track currently loaded scenario
	mu              sync.Mutex
	currentScenario string
}

// NewHandler creates a new handler with the given store and clock.
func NewHandler(store vacation.Store, clock vacation.Clock) *Handler {
	return &Handler{
		Store:    store,
		Clock:    clock,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees with their stats.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, emp := range employees {
		dtos[i] = toEmployeeDTO(emp)
		dtos[i].Stats = toStatsDTO(emp, asOf)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee with stats.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	emp, err := h.Store.GetEmployee(r.Context(), vacation.EmployeeID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	dto := toEmployeeDTO(emp)
	dto.Stats = toStatsDTO(emp, asOf)
	writeJSON(w, http.StatusOK, dto)
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := vacation.NewEmployee(req.Name, req.Birthday, req.StartDate)
	if err != nil {
		writeDomainError(w, "Invalid employee", err)
		return
	}

	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetStats returns the balance of one employee.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.asOf(w, r)
	if !ok {
		return
	}

	emp, err := h.Store.GetEmployee(r.Context(), vacation.EmployeeID(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsDTO(emp, asOf))
}

// AddRequest logs a vacation request.
func (h *Handler) AddRequest(w http.ResponseWriter, r *http.Request) {
	var body AddRequestRequest
	if !h.decode(w, r, &body) {
		return
	}

	req, err := vacation.NewRequest(body.Date, body.Days)
	if err != nil {
		writeDomainError(w, "Invalid request", err)
		return
	}

	id := vacation.EmployeeID(chi.URLParam(r, "id"))
	if err := h.Store.AddRequest(r.Context(), id, req); err != nil {
		writeDomainError(w, "Failed to add request", err)
		return
	}

	writeJSON(w, http.StatusCreated, toRequestDTO(req))
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// ResetDatabase clears all data and re-seeds the sample employees.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.currentScenario = ""

	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	if _, err := vacation.Seed(ctx, h.Store, vacation.Today(h.Clock).Year()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed database", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) asOf(w http.ResponseWriter, r *http.Request) (vacation.Date, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return vacation.Today(h.Clock), true
	}
	d, err := vacation.ParseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of (use YYYY-MM-DD)", err)
		return vacation.Date{}, false
	}
	return d, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, "Validation failed", verrs)
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps vacation errors to 404 / 400, anything else to 500.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case vacation.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Employee not found", err)
	case vacation.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

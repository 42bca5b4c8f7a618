package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScenarios(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/scenarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]ScenarioDTO](t, rec)
	require.Len(t, list, len(scenarios))

	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
		assert.NotEmpty(t, s.Name)
		assert.Len(t, s.AsOf, 5)
	}
	assert.Equal(t, []string{"sample", "regular-accrual", "birthday-bonus", "bonus-used", "negative-balance"}, ids)
}

func TestCurrentScenario_NoneLoaded(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/scenarios/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestLoadScenario_BonusUsed(t *testing.T) {
	srv, store := newTestServer(t)

	// WHEN: bonus-used is loaded
	rec := do(t, srv, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{ScenarioID: "bonus-used"})
	require.Equal(t, http.StatusOK, rec.Code)

	// THEN: the sample employees are gone
	employees, err := store.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "emp-bonus-used", string(employees[0].ID))

	// AND: the February day is covered by the bonus
	rec = do(t, srv, http.MethodGet, "/api/employees/emp-bonus-used/stats?as_of=2026-02-25", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[StatsDTO](t, rec)
	assert.Equal(t, 4, stats.RegularAccrued)
	assert.Equal(t, 0, stats.RegularUsed)
	assert.True(t, stats.BonusUsed)
	assert.Equal(t, 0, stats.BonusAvailable)
	assert.Equal(t, "+4", stats.TotalBalanceDisplay)

	rec = do(t, srv, http.MethodGet, "/api/scenarios/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bonus-used", decode[ScenarioDTO](t, rec).ID)
}

func TestLoadScenario_NegativeBalance(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{ScenarioID: "negative-balance"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/employees/emp-negative/stats?as_of=2026-01-25", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[StatsDTO](t, rec)
	assert.Equal(t, -3, stats.TotalBalance)
	assert.Equal(t, "-3", stats.TotalBalanceDisplay)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"unknown id", LoadScenarioRequest{ScenarioID: "nope"}},
		{"missing id", map[string]string{}},
		{"malformed", "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := newTestServer(t)

			rec := do(t, srv, http.MethodPost, "/api/scenarios/load", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			// store untouched
			employees, err := store.ListEmployees(context.Background())
			require.NoError(t, err)
			assert.Len(t, employees, 3)
		})
	}
}

func TestResetDatabase_ClearsCurrentScenario(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{ScenarioID: "regular-accrual"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/scenarios/current", nil)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

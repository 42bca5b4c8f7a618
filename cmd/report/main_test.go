package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

func TestRun_SeededMemoryStore(t *testing.T) {
	t.Setenv("VACATION_STORE", "")
	t.Setenv("VACATION_SEED", "")

	var out bytes.Buffer
	clock := vacation.FixedClock(time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC))
	err := run(context.Background(), []string{"-store=memory"}, &out, io.Discard, clock)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "as of 2026-05-03")

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 6)
	assert.Regexp(t, `^ID\s+NAME`, lines[2])

	// Bob: May birthday, 10 accrued, 2 used, bonus available -> +9
	assert.Regexp(t, `^emp-002\s+Bob Smith\s+May\s+10\s+2\s+available\s+\+9$`, lines[4])
}

func TestRun_ExplicitDate(t *testing.T) {
	t.Setenv("VACATION_STORE", "")
	t.Setenv("VACATION_SEED", "")

	var out bytes.Buffer
	clock := vacation.FixedClock(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))
	err := run(context.Background(), []string{"-store=memory", "-date=2026-01-25"}, &out, io.Discard, clock)
	require.NoError(t, err)

	assert.Regexp(t, `emp-002\s+Bob Smith\s+May\s+2\s+2\s+-\s+0\n`, out.String())
}

func TestRun_BadDate(t *testing.T) {
	t.Setenv("VACATION_STORE", "")

	err := run(context.Background(), []string{"-store=memory", "-date=yesterday"}, io.Discard, io.Discard, vacation.RealClock{})
	assert.ErrorIs(t, err, vacation.ErrInvalidDate)
}

//go:build cgo && !windows

package cadical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionLimit(t *testing.T) {
	sat := pigeonHole(t, 5)

	require.NoError(t, sat.Limit("decisions", 100))
	status, err := sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unknown, status)

	// Limits only apply to the next solve call; disabled again the search
	// runs to completion.
	require.NoError(t, sat.Limit("decisions", -1))
	status, err = sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, status)
}

func TestConflictLimit(t *testing.T) {
	sat := pigeonHole(t, 5)

	require.NoError(t, sat.Limit("conflicts", 100))
	status, err := sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unknown, status)

	require.NoError(t, sat.Limit("conflicts", -1))
	status, err = sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, status)
}

func TestZeroConflictBudget(t *testing.T) {
	sat := pigeonHole(t, 9)

	require.NoError(t, sat.Limit("conflicts", 0))
	status, err := sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unknown, status)
}

func TestUnknownLimit(t *testing.T) {
	sat := pigeonHole(t, 5)

	err := sat.Limit("bad", 0)
	assert.ErrorIs(t, err, ErrUnknownLimit)
}

func TestConfigure(t *testing.T) {
	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	require.NoError(t, sat.AddClause(1, 2))
	require.NoError(t, sat.Configure("sat"))

	// An unrecognized name fails and leaves the solver usable.
	assert.ErrorIs(t, sat.Configure("nonsense"), ErrUnknownConfig)
	status, err := sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Satisfiable, status)
}

func TestNewWithConfig(t *testing.T) {
	sat, err := NewWithConfig("unsat")
	require.NoError(t, err)
	require.NoError(t, sat.Close())

	_, err = NewWithConfig("nonsense")
	assert.ErrorIs(t, err, ErrUnknownConfig)
}

func TestSetOption(t *testing.T) {
	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	require.NoError(t, sat.Set("quiet", 1))
	assert.ErrorIs(t, sat.Set("nonsense", 1), ErrUnknownOption)
}

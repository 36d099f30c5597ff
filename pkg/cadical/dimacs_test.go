//go:build cgo && !windows

package cadical

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDimacs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.cnf")
	require.NoError(t, os.WriteFile(path, []byte("p cnf 3 2\n1 -2 0\n2 3 0\n"), 0o644))

	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	vars, err := sat.ReadDimacs(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, vars)
	assert.Equal(t, int32(3), sat.MaxVariable())
	assert.Equal(t, 2, sat.NumClauses())

	status, err := sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Satisfiable, status)
}

func TestReadDimacsMissingFile(t *testing.T) {
	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	_, err = sat.ReadDimacs(filepath.Join(t.TempDir(), "missing.cnf"), false)
	require.Error(t, err)

	// The failed read leaves the solver usable.
	require.NoError(t, sat.AddClause(1, 2))
	status, err := sat.Solve()
	require.NoError(t, err)
	assert.Equal(t, Satisfiable, status)
}

func TestReadDimacsStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sloppy.cnf")
	// More clauses than the header declares.
	require.NoError(t, os.WriteFile(path, []byte("p cnf 2 1\n1 0\n2 0\n"), 0o644))

	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	_, err = sat.ReadDimacs(path, true)
	assert.Error(t, err)
}

func TestDimacsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pigeon5.cnf")

	sat := pigeonHole(t, 5)
	require.NoError(t, sat.WriteDimacs(path))
	maxVar := sat.MaxVariable()

	fresh, err := New()
	require.NoError(t, err)
	defer fresh.Close()

	vars, err := fresh.ReadDimacs(path, false)
	require.NoError(t, err)
	assert.Equal(t, int(maxVar), vars)

	status, err := fresh.Solve()
	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, status)
}

func TestWriteDimacsMinMaxVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padded.cnf")

	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	require.NoError(t, sat.AddClause(1, 2))
	require.NoError(t, sat.WriteDimacsMinMaxVar(path, 7))

	fresh, err := New()
	require.NoError(t, err)
	defer fresh.Close()

	vars, err := fresh.ReadDimacs(path, false)
	require.NoError(t, err)
	assert.Equal(t, 7, vars)
}

func TestWriteDimacsUnwritablePath(t *testing.T) {
	sat, err := New()
	require.NoError(t, err)
	defer sat.Close()

	require.NoError(t, sat.AddClause(1))
	err = sat.WriteDimacs(filepath.Join(t.TempDir(), "no", "such", "dir", "out.cnf"))
	assert.Error(t, err)
}

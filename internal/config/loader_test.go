package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargauss/gauss"
	"github.com/katalvlaran/pargauss/matrix"
)

func TestLoadSystem(t *testing.T) {
	n, m, err := LoadSystem(filepath.Join("testdata", "system.yaml"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	rows, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1, 5}, {1, -1, 1}}, rows)
}

func TestLoadSystem_Ragged(t *testing.T) {
	path := filepath.Join("testdata", "system_ragged.yaml")
	_, _, err := LoadSystem(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "rows[1]")
	require.Contains(t, err.Error(), path)
}

func TestLoadSystem_NotFound(t *testing.T) {
	_, _, err := LoadSystem(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, IsKind(err, KindNotFound))
}

func TestMapSystem_Errors(t *testing.T) {
	cases := []struct {
		name  string
		dto   YAMLSystem
		field string
	}{
		{"zero n", YAMLSystem{N: 0}, "n"},
		{"row count", YAMLSystem{N: 2, Rows: [][]float64{{1, 2, 3}}}, "rows"},
		{"row width", YAMLSystem{N: 1, Rows: [][]float64{{1}}}, "rows[0]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := MapSystem("x.yaml", c.dto)
			var oe *OpError
			require.True(t, errors.As(err, &oe))
			require.Equal(t, KindInvalidConfig, oe.Kind)
			require.Equal(t, c.field, oe.Field)
		})
	}
}

func TestSaveSystem_RoundTrip(t *testing.T) {
	src, err := matrix.NewFromRows([][]float64{{4, -2, 0.5, 1}, {3, 6, -1, 2}, {1, 1, 7, 3}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sys.yaml")
	require.NoError(t, SaveSystem(path, src))

	n, got, err := LoadSystem(path)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, src.String(), got.String())
}

func TestSaveSystem_Errors(t *testing.T) {
	require.True(t, IsKind(SaveSystem(filepath.Join(t.TempDir(), "x.yaml"), nil), KindInvalidConfig))

	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	err = SaveSystem(filepath.Join(t.TempDir(), "no", "such", "dir.yaml"), m)
	require.True(t, IsKind(err, KindIO))
}

func TestLoadRun(t *testing.T) {
	path := filepath.Join("testdata", "run.yaml")
	r, err := LoadRun(path, DefaultRun())
	require.NoError(t, err)

	require.Equal(t, 64, r.Size)
	require.Equal(t, int64(7), r.Seed)
	require.Equal(t, 2, r.Workers)
	require.Equal(t, gauss.ModeSerial, r.Mode)
	require.Equal(t, gauss.PivotPartial, r.Pivoting)
	require.Equal(t, 1e-6, r.Epsilon)
	require.Equal(t, 32, r.ReduceGrain)
	require.True(t, r.Verify)
	require.False(t, r.Quiet)
	require.Equal(t, filepath.Join("testdata", "system.yaml"), r.Input)

	// untouched fields keep their defaults
	require.Equal(t, DefaultRun().Min, r.Min)
	require.Equal(t, DefaultRun().Max, r.Max)
	require.Equal(t, gauss.DefaultGrain, r.Grain)
}

func TestLoadRun_Invalid(t *testing.T) {
	path := filepath.Join("testdata", "run_invalid.yaml")
	_, err := LoadRun(path, DefaultRun())
	var oe *OpError
	require.True(t, errors.As(err, &oe))
	require.Equal(t, "pivot", oe.Field)
	require.Equal(t, path, oe.Path)
}

func TestLoadRun_NaNEpsilon(t *testing.T) {
	path := filepath.Join("testdata", "run_nan.yaml")
	_, err := LoadRun(path, DefaultRun())
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.True(t, IsKind(err, KindInvalidConfig))
	require.Contains(t, err.Error(), "epsilon")
}

// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pargauss/matrix"
)

// LoadRun reads a YAML run file and overlays it on base.
func LoadRun(path string, base Run) (Run, error) {
	const op = "config.load_run"
	b, err := readFile(op, path)
	if err != nil {
		return Run{}, err
	}

	var dto YAMLRun
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Run{}, &OpError{Op: op, Kind: KindInvalidConfig, Path: path, Err: err}
	}

	return MapRun(path, dto, base)
}

// LoadSystem reads an augmented matrix from a YAML system file.
// The declared n must match the row count and every row must hold n+1 values.
func LoadSystem(path string) (int, *matrix.Dense, error) {
	const op = "config.load_system"
	b, err := readFile(op, path)
	if err != nil {
		return 0, nil, err
	}

	var dto YAMLSystem
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return 0, nil, &OpError{Op: op, Kind: KindInvalidConfig, Path: path, Err: err}
	}

	return MapSystem(path, dto)
}

// MapSystem validates dto and converts it to a matrix.
func MapSystem(path string, dto YAMLSystem) (int, *matrix.Dense, error) {
	const op = "config.load_system"
	if dto.N < 1 {
		return 0, nil, invalidField(op, path, "n", "n must be >= 1")
	}
	if len(dto.Rows) != dto.N {
		return 0, nil, invalidField(op, path, "rows", fmt.Sprintf("got %d rows, want %d", len(dto.Rows), dto.N))
	}
	for i, r := range dto.Rows {
		if len(r) != dto.N+1 {
			return 0, nil, invalidField(op, path, fmt.Sprintf("rows[%d]", i),
				fmt.Sprintf("got %d values, want %d", len(r), dto.N+1))
		}
	}
	m, err := matrix.NewFromRows(dto.Rows)
	if err != nil {
		return 0, nil, &OpError{Op: op, Kind: KindInvalidConfig, Path: path, Field: "rows", Err: err}
	}

	return dto.N, m, nil
}

// SaveSystem writes m as a YAML system file, creating or truncating path.
func SaveSystem(path string, m matrix.Matrix) error {
	const op = "config.save_system"
	rows, err := matrix.ToRows(m)
	if err != nil {
		return &OpError{Op: op, Kind: KindInvalidConfig, Path: path, Err: err}
	}
	b, err := yaml.Marshal(YAMLSystem{N: len(rows), Rows: rows})
	if err != nil {
		return &OpError{Op: op, Kind: KindIO, Path: path, Err: err}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &OpError{Op: op, Kind: KindIO, Path: path, Err: err}
	}
	return nil
}

func readFile(op, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &OpError{Op: op, Kind: kind, Path: path, Err: err}
	}
	return b, nil
}

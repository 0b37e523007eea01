// SPDX-License-Identifier: MIT

package config

// YAMLRun mirrors a run file. Pointer fields distinguish "absent" from zero,
// so a file only overrides what it names.
type YAMLRun struct {
	Size        *int     `yaml:"size"`
	Seed        *int64   `yaml:"seed"`
	Min         *int     `yaml:"min"`
	Max         *int     `yaml:"max"`
	Workers     *int     `yaml:"workers"`
	Grain       *int     `yaml:"grain"`
	ReduceGrain *int     `yaml:"reduce_grain"`
	Mode        string   `yaml:"mode"`
	Pivot       string   `yaml:"pivot"`
	Epsilon     *float64 `yaml:"epsilon"`
	Input       string   `yaml:"input"`
	Verify      *bool    `yaml:"verify"`
	Quiet       *bool    `yaml:"quiet"`
}

// YAMLSystem is the on-disk form of an augmented matrix.
type YAMLSystem struct {
	N    int         `yaml:"n"`
	Rows [][]float64 `yaml:"rows,flow"`
}

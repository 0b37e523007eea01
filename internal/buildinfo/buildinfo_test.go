package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	s := String()
	require.Contains(t, s, "gauss v1.2.3")
	require.Contains(t, s, "commit=none")
}

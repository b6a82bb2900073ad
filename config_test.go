package bump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	c, err := DecodeConfig(`
capacity = 4096
direction = "down"
strategy = "checked"
`)
	require.NoError(t, err)
	require.Equal(t, Config{Capacity: 4096, Direction: "down", Strategy: "checked"}, c)
	require.NoError(t, c.Validate())

	c, err = DecodeConfig(`direction = "down"`)
	require.NoError(t, err)
	require.Equal(t, DefaultCapacity, c.Capacity, "missing keys keep defaults")
	require.Equal(t, "fast", c.Strategy)
}

func TestDecodeConfigRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeConfig(`
capacity = 64
growth = 2
`)
	require.Error(t, err)
	require.Equal(t, InvalidArgumentError, errors.Cause(err))
	require.Contains(t, err.Error(), "growth")

	_, err = DecodeConfig(`capacity = "lots"`)
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("capacity = 128\nstrategy = \"checked\"\n"), 0o600))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Config{Capacity: 128, Direction: "up", Strategy: "checked"}, c)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	for name, c := range map[string]Config{
		"negative capacity": {Capacity: -1, Direction: "up", Strategy: "fast"},
		"huge capacity":     {Capacity: MaxCapacity + 1, Direction: "up", Strategy: "fast"},
		"bad direction":     {Capacity: 8, Direction: "left", Strategy: "fast"},
		"bad strategy":      {Capacity: 8, Direction: "up", Strategy: "careful"},
	} {
		err := c.Validate()
		require.Equal(t, InvalidArgumentError, errors.Cause(err), name)
	}
	require.NoError(t, DefaultConfig().Validate())
}

func TestNewFromConfig(t *testing.T) {
	a, err := NewFromConfig[Align8](Config{Capacity: 64, Direction: "down", Strategy: "checked"})
	require.NoError(t, err)
	defer a.Release()

	_, isChecked := a.(checked)
	require.True(t, isChecked)
	require.Equal(t, 64, a.Metrics().MaxCapacity)

	p, err := a.Alloc(Layout{Size: 8, Align: 8})
	require.NoError(t, err)
	require.Equal(t, uintptr(56), p.Offset(), "down arena fills the region from the end")

	_, err = NewFromConfig[Align8](Config{Capacity: 64, Direction: "up", Strategy: "eager"})
	require.Equal(t, InvalidArgumentError, errors.Cause(err))
}

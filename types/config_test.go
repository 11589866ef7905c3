package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()

	assert.Empty(t, config.Filename)
	assert.False(t, config.InMemory)
	assert.True(t, config.SharedCache)
	assert.False(t, config.CreateIfMissing)
	assert.False(t, config.ReadOnly)
	assert.False(t, config.Immutable)
	assert.Empty(t, config.VFS)
	assert.Empty(t, config.Pragmas)
}

func TestConfigMode(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected OpenMode
	}{
		{"default is rw", Config{}, OpenModeReadWrite},
		{"read only", Config{ReadOnly: true}, OpenModeReadOnly},
		{"create if missing", Config{CreateIfMissing: true}, OpenModeReadWriteCreate},
		{"create beats read only", Config{CreateIfMissing: true, ReadOnly: true}, OpenModeReadWriteCreate},
		{"memory beats everything", Config{InMemory: true, CreateIfMissing: true, ReadOnly: true}, OpenModeMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Mode())
		})
	}
}

func TestWithPragma(t *testing.T) {
	base := NewConfig()
	base = base.WithPragma("journal_mode", "WAL")

	derived := base.WithPragma("cache_size", "2000")

	// The receiver keeps its own pragma list
	assert.Len(t, base.Pragmas, 1)
	assert.Len(t, derived.Pragmas, 2)
	assert.Equal(t, Pragma{Name: "cache_size", Value: "2000"}, derived.Pragmas[1])

	// Sibling derivations never share backing storage
	other := base.WithPragma("synchronous", "NORMAL")
	assert.Equal(t, Pragma{Name: "cache_size", Value: "2000"}, derived.Pragmas[1])
	assert.Equal(t, Pragma{Name: "synchronous", Value: "NORMAL"}, other.Pragmas[1])
}

func TestConfigErrorf(t *testing.T) {
	err := ConfigErrorf("unknown value %q for `mode`", "bogus")

	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), `"bogus"`)
}

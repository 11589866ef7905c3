package dsn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeDSN(t *testing.T) {
	config, err := Parse("sqlite://app.db?mode=rwc&pragma_journal_mode=WAL&pragma_busy_timeout=5000")
	require.NoError(t, err)

	assert.Equal(t,
		"file:app.db?mode=rwc&cache=shared&_journal_mode=WAL&_busy_timeout=5000",
		NativeDSN(config))
}

func TestNativeDSNImmutable(t *testing.T) {
	config, err := Parse("sqlite://app.db?mode=ro&immutable=true&vfs=unix")
	require.NoError(t, err)

	// The native dialect spells immutable as 1
	assert.Equal(t, "file:app.db?mode=ro&cache=shared&immutable=1&vfs=unix", NativeDSN(config))
}

func TestNativeDSNInMemory(t *testing.T) {
	config, err := Parse("sqlite::memory:")
	require.NoError(t, err)

	native := NativeDSN(config)
	assert.True(t, strings.HasPrefix(native, "file:sqlx-in-memory-"))
	assert.False(t, strings.HasPrefix(native, "file:file:"))
	assert.Contains(t, native, "mode=memory")
}

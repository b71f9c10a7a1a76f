package taskeventstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInstantKey(t *testing.T) {
	base := time.Date(2026, 5, 20, 14, 30, 0, 123456789, time.UTC)

	t.Run(`sub microsecond drift maps to the same instant`, func(t *testing.T) {
		require.Equal(t, InstantKey(base), InstantKey(base.Add(100*time.Nanosecond)))
		require.Equal(t, InstantKey(base), InstantKey(base.Truncate(time.Microsecond)))
	})

	t.Run(`distinct microseconds stay distinct`, func(t *testing.T) {
		require.NotEqual(t, InstantKey(base), InstantKey(base.Add(time.Microsecond)))
	})
}

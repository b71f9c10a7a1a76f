package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractBadge(t *testing.T) {
	t.Run(`first isolated badge number`, func(t *testing.T) {
		require.Equal(t, "48213", ExtractBadge("responsável matrícula 48213 aprovou"))
		require.Equal(t, "7001", ExtractBadge("7001 e 8002 na mesma linha"))
	})

	t.Run(`digits glued to words or out of range are ignored`, func(t *testing.T) {
		require.Equal(t, "", ExtractBadge("código NR35 sem matrícula"))
		require.Equal(t, "", ExtractBadge("apenas 123"))
		require.Equal(t, "", ExtractBadge("protocolo 123456789"))
	})
}

package statushandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"realloc-backend/models"
)

func TestDecide(t *testing.T) {
	t.Run(`waiting approval never changes by aggregation`, func(t *testing.T) {
		require.Equal(t, models.ReallocTaskStatusAguardandoAprovacao,
			Decide(models.ReallocTaskStatusAguardandoAprovacao, 0))
		require.Equal(t, models.ReallocTaskStatusAguardandoAprovacao,
			Decide(models.ReallocTaskStatusAguardandoAprovacao, 5))
	})

	t.Run(`no pending task means ready for submission`, func(t *testing.T) {
		require.Equal(t, models.ReallocTaskStatusProntoParaSubmissao,
			Decide(models.ReallocTaskStatusTratandoPendencias, 0))
		require.Equal(t, models.ReallocTaskStatusProntoParaSubmissao,
			Decide(models.ReallocTaskStatusProntoParaSubmissao, 0))
	})

	t.Run(`pending tasks reopen a ready reallocation`, func(t *testing.T) {
		require.Equal(t, models.ReallocTaskStatusTratandoPendencias,
			Decide(models.ReallocTaskStatusProntoParaSubmissao, 1))
		require.Equal(t, models.ReallocTaskStatusTratandoPendencias,
			Decide(models.ReallocTaskStatusTratandoPendencias, 3))
	})
}

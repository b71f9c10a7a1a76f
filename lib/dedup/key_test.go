package deduphandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

func TestKeyFor(t *testing.T) {
	trainingID := "b0a1"

	t.Run(`training task keyed by training id`, func(t *testing.T) {
		a := dbmodels.Task{
			Sector:     models.SectorTreinamento,
			Type:       "Integração de Segurança",
			TrainingID: &trainingID,
		}
		b := dbmodels.Task{
			Sector:     models.SectorTreinamento,
			Type:       "INTEGRACAO DE SEGURANCA (turma 2)",
			TrainingID: &trainingID,
		}
		require.Equal(t, KeyFor(a), KeyFor(b))
		require.Equal(t, trainingID, KeyFor(a).Ref)
	})

	t.Run(`training task without reference falls back to sector and type`, func(t *testing.T) {
		task := dbmodels.Task{
			Sector: models.SectorTreinamento,
			Type:   "Regras de Ouro",
		}
		require.Equal(t, Key{Sector: "TREINAMENTO", Ref: "REGRAS DE OURO"}, KeyFor(task))
	})

	t.Run(`sector and type are normalized`, func(t *testing.T) {
		a := dbmodels.Task{Sector: models.SectorRH, Type: "Atualização de CTPS"}
		b := dbmodels.Task{Sector: models.SectorRH, Type: "  atualizacao de ctps "}
		require.Equal(t, KeyFor(a), KeyFor(b))
	})

	t.Run(`different trainings are different obligations`, func(t *testing.T) {
		otherID := "c2d3"
		a := dbmodels.Task{Sector: models.SectorTreinamento, Type: "NR-35", TrainingID: &trainingID}
		b := dbmodels.Task{Sector: models.SectorTreinamento, Type: "NR-35", TrainingID: &otherID}
		require.NotEqual(t, KeyFor(a), KeyFor(b))
	})
}

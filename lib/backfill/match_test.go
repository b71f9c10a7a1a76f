package backfillhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

func TestClassifyOutcome(t *testing.T) {
	t.Run(`rejection keywords win over approval keywords`, func(t *testing.T) {
		status, ok := ClassifyOutcome("tarefa reprovada pelo validador")
		require.True(t, ok)
		require.Equal(t, models.TaskStatusCancelada, status)

		// REPROV contém APROV; a ordem das regras resolve a ambiguidade
		status, ok = ClassifyOutcome("REPROVADO")
		require.True(t, ok)
		require.Equal(t, models.TaskStatusCancelada, status)
	})

	t.Run(`approval keywords`, func(t *testing.T) {
		for _, text := range []string{"tarefa aprovada", "documento validado", "concluída com sucesso"} {
			status, ok := ClassifyOutcome(text)
			require.True(t, ok, text)
			require.Equal(t, models.TaskStatusConcluida, status, text)
		}
	})

	t.Run(`unrelated text is not classified`, func(t *testing.T) {
		_, ok := ClassifyOutcome("comentário sem decisão")
		require.False(t, ok)
	})
}

func TestGuessSector(t *testing.T) {
	t.Run(`sector keywords`, func(t *testing.T) {
		sector, ok := GuessSector("ASO de mudança de função")
		require.True(t, ok)
		require.Equal(t, models.SectorMedicina, sector)

		sector, ok = GuessSector("integração de regras de ouro")
		require.True(t, ok)
		require.Equal(t, models.SectorTreinamento, sector)

		sector, ok = GuessSector("atualização de CTPS")
		require.True(t, ok)
		require.Equal(t, models.SectorRH, sector)
	})

	t.Run(`no keyword no guess`, func(t *testing.T) {
		_, ok := GuessSector("pendência genérica")
		require.False(t, ok)
	})
}

func TestExtractTaskFragment(t *testing.T) {
	t.Run(`quoted fragment wins`, func(t *testing.T) {
		require.Equal(t, "Exame periódico", ExtractTaskFragment(`aprovada a tarefa "Exame periódico" do funcionário`))
		require.Equal(t, "ASO", ExtractTaskFragment("reprovado o documento 'ASO' enviado"))
	})

	t.Run(`text after the word tarefa`, func(t *testing.T) {
		require.Equal(t, "EXAME PERIODICO APROVADA", ExtractTaskFragment("tarefa exame periódico aprovada"))
	})

	t.Run(`whole text as fallback`, func(t *testing.T) {
		require.Equal(t, "aso reprovado", ExtractTaskFragment("aso reprovado"))
	})
}

func TestResolveTask(t *testing.T) {
	aso := dbmodels.Task{Sector: models.SectorMedicina, Type: "ASO de mudança de função"}
	aso.ID = "t-aso"
	ctps := dbmodels.Task{Sector: models.SectorRH, Type: "Atualização de CTPS"}
	ctps.ID = "t-ctps"
	nr35 := dbmodels.Task{Sector: models.SectorTreinamento, Type: ""}
	nr35.ID = "t-nr35"
	nr35.Training = &dbmodels.Training{Name: "NR-35 Trabalho em Altura"}
	candidates := []dbmodels.Task{ctps, nr35, aso}

	t.Run(`fuzzy match on the task name`, func(t *testing.T) {
		task, ok := ResolveTask(`reprovada a tarefa "Atualização de CTPS"`, candidates)
		require.True(t, ok)
		require.Equal(t, "t-ctps", task.ID)
	})

	t.Run(`training tasks match by training name`, func(t *testing.T) {
		task, ok := ResolveTask("aprovado o certificado NR-35 trabalho em altura", candidates)
		require.True(t, ok)
		require.Equal(t, "t-nr35", task.ID)
	})

	t.Run(`sector guess when the name does not match`, func(t *testing.T) {
		task, ok := ResolveTask("exame médico aprovado", candidates)
		require.True(t, ok)
		require.Equal(t, "t-aso", task.ID)
	})

	t.Run(`no candidates no match`, func(t *testing.T) {
		_, ok := ResolveTask("tarefa aprovada", nil)
		require.False(t, ok)

		_, ok = ResolveTask("texto sem relação nenhuma", candidates)
		require.False(t, ok)
	})
}

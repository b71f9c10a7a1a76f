package deduphandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

func activeTask(id, taskType string, sector models.Sector, createdAt time.Time) dbmodels.Task {
	task := dbmodels.Task{
		Sector: sector,
		Type:   taskType,
		Status: models.TaskStatusPendente,
	}
	task.ID = id
	task.CreatedAt = createdAt
	return task
}

func TestPlanCancellations(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run(`oldest active task survives`, func(t *testing.T) {
		tasks := []dbmodels.Task{
			activeTask("t2", "Atualização de CTPS", models.SectorRH, base.Add(time.Hour)),
			activeTask("t1", "atualizacao de ctps", models.SectorRH, base),
			activeTask("t3", "ATUALIZACAO DE CTPS", models.SectorRH, base.Add(2*time.Hour)),
		}
		plan := PlanCancellations(tasks)
		require.Len(t, plan, 2)
		for _, c := range plan {
			require.Equal(t, "t1", c.Survivor.ID)
		}
		require.Equal(t, "t2", plan[0].Task.ID)
		require.Equal(t, "t3", plan[1].Task.ID)
	})

	t.Run(`created_at tie breaks by id`, func(t *testing.T) {
		tasks := []dbmodels.Task{
			activeTask("bb", "ASO", models.SectorMedicina, base),
			activeTask("aa", "ASO", models.SectorMedicina, base),
		}
		plan := PlanCancellations(tasks)
		require.Len(t, plan, 1)
		require.Equal(t, "aa", plan[0].Survivor.ID)
		require.Equal(t, "bb", plan[0].Task.ID)
	})

	t.Run(`terminal tasks are never touched`, func(t *testing.T) {
		done := activeTask("t1", "ASO", models.SectorMedicina, base)
		done.Status = models.TaskStatusConcluida
		cancelled := activeTask("t2", "ASO", models.SectorMedicina, base.Add(time.Minute))
		cancelled.Status = models.TaskStatusCancelada
		tasks := []dbmodels.Task{
			done,
			cancelled,
			activeTask("t3", "ASO", models.SectorMedicina, base.Add(2*time.Minute)),
		}
		require.Empty(t, PlanCancellations(tasks))
	})

	t.Run(`terminal duplicate does not shield an active pair`, func(t *testing.T) {
		done := activeTask("t1", "ASO", models.SectorMedicina, base)
		done.Status = models.TaskStatusConcluida
		tasks := []dbmodels.Task{
			done,
			activeTask("t2", "ASO", models.SectorMedicina, base.Add(time.Minute)),
			activeTask("t3", "ASO", models.SectorMedicina, base.Add(2*time.Minute)),
		}
		plan := PlanCancellations(tasks)
		require.Len(t, plan, 1)
		require.Equal(t, "t2", plan[0].Survivor.ID)
		require.Equal(t, "t3", plan[0].Task.ID)
	})

	t.Run(`distinct obligations are untouched`, func(t *testing.T) {
		tasks := []dbmodels.Task{
			activeTask("t1", "Atualização de CTPS", models.SectorRH, base),
			activeTask("t2", "ASO", models.SectorMedicina, base),
			activeTask("t3", "Exame periódico", models.SectorMedicina, base),
		}
		require.Empty(t, PlanCancellations(tasks))
	})

	t.Run(`groups stay independent`, func(t *testing.T) {
		trainingID := "tr-1"
		training1 := activeTask("t1", "NR-35", models.SectorTreinamento, base)
		training1.TrainingID = &trainingID
		training2 := activeTask("t2", "NR-35 turma nova", models.SectorTreinamento, base.Add(time.Minute))
		training2.TrainingID = &trainingID
		tasks := []dbmodels.Task{
			training1,
			training2,
			activeTask("t3", "ASO", models.SectorMedicina, base),
			activeTask("t4", "aso", models.SectorMedicina, base.Add(time.Second)),
		}
		plan := PlanCancellations(tasks)
		require.Len(t, plan, 2)
		require.Equal(t, "t1", plan[0].Survivor.ID)
		require.Equal(t, "t2", plan[0].Task.ID)
		require.Equal(t, "t3", plan[1].Survivor.ID)
		require.Equal(t, "t4", plan[1].Task.ID)
	})
}

package taskderivehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

func mandatoryTraining(trainingID, name string) dbmodels.TrainingRequirement {
	req := dbmodels.TrainingRequirement{
		ContractID: "contract-1",
		Role:       "Eletricista",
		TrainingID: trainingID,
		Obligation: models.ObligationObrigatorio,
		Active:     true,
	}
	req.Training = &dbmodels.Training{
		Name:   name,
		Sector: models.SectorTreinamento,
	}
	req.Training.ID = trainingID
	return req
}

func activeTemplate(id string, sector models.Sector, taskType string) dbmodels.StandardTaskTemplate {
	tpl := dbmodels.StandardTaskTemplate{
		Sector: sector,
		Type:   taskType,
		Active: true,
	}
	tpl.ID = id
	return tpl
}

func TestBuildPlan(t *testing.T) {
	t.Run(`mandatory trainings and active templates become pending tasks`, func(t *testing.T) {
		plan := BuildPlan("realloc-1", PlanInput{
			Trainings: []dbmodels.TrainingRequirement{
				mandatoryTraining("tr-1", "Integração de Segurança"),
			},
			Templates: []dbmodels.StandardTaskTemplate{
				activeTemplate("tpl-1", models.SectorRH, "Atualização de CTPS"),
				activeTemplate("tpl-2", models.SectorMedicina, "ASO de mudança de função"),
			},
			Priority: models.TaskPriorityAlta,
		})
		require.Len(t, plan, 3)
		for _, task := range plan {
			require.Equal(t, "realloc-1", task.ReallocationID)
			require.Equal(t, models.TaskStatusPendente, task.Status)
			require.Equal(t, models.TaskPriorityAlta, task.Priority)
		}
		require.Equal(t, models.SectorTreinamento, plan[0].Sector)
		require.NotNil(t, plan[0].TrainingID)
		require.Equal(t, "tr-1", *plan[0].TrainingID)
		require.NotNil(t, plan[1].TemplateID)
		require.Equal(t, "tpl-1", *plan[1].TemplateID)
	})

	t.Run(`inactive or non mandatory policy rows are skipped`, func(t *testing.T) {
		inactiveReq := mandatoryTraining("tr-1", "NR-35")
		inactiveReq.Active = false
		optionalReq := mandatoryTraining("tr-2", "Primeiros Socorros")
		optionalReq.Obligation = models.ObligationComplementar
		inactiveTpl := activeTemplate("tpl-1", models.SectorRH, "Atualização de CTPS")
		inactiveTpl.Active = false

		plan := BuildPlan("realloc-1", PlanInput{
			Trainings: []dbmodels.TrainingRequirement{inactiveReq, optionalReq},
			Templates: []dbmodels.StandardTaskTemplate{inactiveTpl},
			Priority:  models.TaskPriorityMedia,
		})
		require.Empty(t, plan)
	})

	t.Run(`existing tasks are not recreated`, func(t *testing.T) {
		trainingID := "tr-1"
		existingTraining := dbmodels.Task{
			Sector:     models.SectorTreinamento,
			Type:       "Integração de Segurança",
			Status:     models.TaskStatusPendente,
			TrainingID: &trainingID,
		}
		existingTemplate := dbmodels.Task{
			Sector: models.SectorRH,
			Type:   "atualizacao de ctps",
			Status: models.TaskStatusPendente,
		}
		plan := BuildPlan("realloc-1", PlanInput{
			Existing: []dbmodels.Task{existingTraining, existingTemplate},
			Trainings: []dbmodels.TrainingRequirement{
				mandatoryTraining("tr-1", "Integração de Segurança"),
			},
			Templates: []dbmodels.StandardTaskTemplate{
				activeTemplate("tpl-1", models.SectorRH, "Atualização de CTPS"),
				activeTemplate("tpl-2", models.SectorMedicina, "ASO de mudança de função"),
			},
			Priority: models.TaskPriorityMedia,
		})
		require.Len(t, plan, 1)
		require.Equal(t, models.SectorMedicina, plan[0].Sector)
	})

	t.Run(`terminal tasks are never resurrected`, func(t *testing.T) {
		cancelled := dbmodels.Task{
			Sector: models.SectorMedicina,
			Type:   "ASO de mudança de função",
			Status: models.TaskStatusCancelada,
		}
		plan := BuildPlan("realloc-1", PlanInput{
			Existing: []dbmodels.Task{cancelled},
			Templates: []dbmodels.StandardTaskTemplate{
				activeTemplate("tpl-2", models.SectorMedicina, "ASO de mudança de função"),
			},
			Priority: models.TaskPriorityMedia,
		})
		require.Empty(t, plan)
	})

	t.Run(`duplicate policy rows collapse into one task`, func(t *testing.T) {
		plan := BuildPlan("realloc-1", PlanInput{
			Trainings: []dbmodels.TrainingRequirement{
				mandatoryTraining("tr-1", "NR-35"),
				mandatoryTraining("tr-1", "NR-35"),
			},
			Priority: models.TaskPriorityMedia,
		})
		require.Len(t, plan, 1)
	})
}

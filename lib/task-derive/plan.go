package taskderivehandler

import (
	deduphandler "realloc-backend/lib/dedup"
	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

// PlanInput reúne o que a política exige e o que a realocação já tem.
type PlanInput struct {
	Existing  []dbmodels.Task
	Trainings []dbmodels.TrainingRequirement // linhas obrigatórias e ativas da matriz
	Templates []dbmodels.StandardTaskTemplate
	Priority  models.TaskPriority
}

// BuildPlan devolve as tarefas exigidas pela política que ainda não
// existem na realocação. A presença é verificada pela chave de
// deduplicação sobre todas as tarefas, ativas ou terminais: rederivar
// nunca ressuscita uma decisão concluída ou cancelada.
func BuildPlan(reallocationID string, in PlanInput) []dbmodels.Task {
	seen := map[deduphandler.Key]bool{}
	for _, t := range in.Existing {
		seen[deduphandler.KeyFor(t)] = true
	}

	plan := []dbmodels.Task{}
	add := func(task dbmodels.Task) {
		k := deduphandler.KeyFor(task)
		if seen[k] {
			return
		}
		seen[k] = true
		plan = append(plan, task)
	}

	for _, req := range in.Trainings {
		if req.Obligation != models.ObligationObrigatorio || !req.Active {
			continue
		}
		trainingID := req.TrainingID
		task := dbmodels.Task{
			ReallocationID: reallocationID,
			Sector:         models.SectorTreinamento,
			Status:         models.TaskStatusPendente,
			Priority:       in.Priority,
			TrainingID:     &trainingID,
		}
		if req.Training != nil {
			task.Type = req.Training.Name
			task.TeamID = req.Training.TeamID
		}
		add(task)
	}

	for _, tpl := range in.Templates {
		if !tpl.Active {
			continue
		}
		templateID := tpl.ID
		add(dbmodels.Task{
			ReallocationID: reallocationID,
			Sector:         tpl.Sector,
			Type:           tpl.Type,
			Status:         models.TaskStatusPendente,
			Priority:       in.Priority,
			TemplateID:     &templateID,
			TeamID:         tpl.TeamID,
		})
	}
	return plan
}

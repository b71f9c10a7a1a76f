package backfillhandler

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/db"
	teamstore "realloc-backend/lib/directory/team-store"
	policystore "realloc-backend/lib/policy/store"
	taskstore "realloc-backend/lib/task/store"
	"realloc-backend/lib/utils/helpers"
	backfillapimodels "realloc-backend/models/api/backfill"
	dbmodels "realloc-backend/models/db"
)

// runTeamSector preenche a equipe de tarefas sem referência de equipe. A
// derivação segue a ordem: equipe do treinamento vinculado, equipe da
// tarefa padrão vinculada, senão palpite por palavras-chave resolvido
// contra o dicionário de equipes.
func (i impl) runTeamSector(ctx context.Context, opts backfillapimodels.RunOptions) (backfillapimodels.Summary, error) {
	summary := backfillapimodels.Summary{Job: backfillapimodels.JobTeamSector, DryRun: opts.DryRun}
	logger := i.GetLogger(summary.Job)
	batch := i.batchSize(opts)
	offset := 0
	for {
		if helpers.IsContextDone(ctx) {
			return summary, errors.New("job interrompido")
		}
		list, err := taskstore.NewInstance(db.DB).ListWithoutTeam(offset, batch)
		if err != nil {
			return summary, err
		}
		if len(list) == 0 {
			return summary, nil
		}
		updatedInPage := 0
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			for _, task := range list {
				if opts.Limit > 0 && summary.Processed >= opts.Limit {
					return nil
				}
				summary.Processed++
				updated, err := i.backfillOneTeam(tx, task, opts.DryRun, &summary)
				if err != nil {
					summary.Errored++
					logger.WithError(err).
						WithField("task_id", task.ID).
						Error("erro ao reconciliar equipe da tarefa, seguindo para a próxima")
					continue
				}
				if updated {
					updatedInPage++
				}
			}
			return nil
		})
		if err != nil {
			return summary, err
		}
		if opts.Limit > 0 && summary.Processed >= opts.Limit {
			return summary, nil
		}
		offset = nextOffset(offset, len(list), updatedInPage, opts.DryRun)
	}
}

func (i impl) backfillOneTeam(tx *gorm.DB, task dbmodels.Task, dryRun bool, summary *backfillapimodels.Summary) (bool, error) {
	teams := teamstore.NewInstance(tx)
	var teamID *string

	// tarefa histórica com referência mas sem o vínculo carregado
	if task.Training == nil && task.TrainingID != nil && *task.TrainingID != "" {
		training, err := policystore.NewInstance(tx).GetTraining(*task.TrainingID)
		if err != nil {
			return false, err
		}
		task.Training = training
	}

	if task.Training != nil {
		if task.Training.TeamID != nil {
			teamID = task.Training.TeamID
		} else if rec, err := teams.FindBySector(task.Training.Sector); err != nil {
			return false, err
		} else if rec != nil {
			teamID = &rec.ID
		}
	}
	if teamID == nil && task.Template != nil {
		if task.Template.TeamID != nil {
			teamID = task.Template.TeamID
		} else if rec, err := teams.FindBySector(task.Template.Sector); err != nil {
			return false, err
		} else if rec != nil {
			teamID = &rec.ID
		}
	}
	if teamID == nil {
		text := strings.Join([]string{string(task.Sector), task.Type, task.Observations}, " ")
		if sector, ok := GuessSector(text); ok {
			rec, err := teams.FindBySector(sector)
			if err != nil {
				return false, err
			}
			if rec == nil {
				rec, err = teams.FindByKeyword(string(sector))
				if err != nil {
					return false, err
				}
			}
			if rec != nil {
				teamID = &rec.ID
			}
		}
	}
	if teamID == nil {
		summary.Skipped++
		return false, nil
	}
	if dryRun {
		summary.Updated++
		return false, nil
	}
	err := taskstore.NewInstance(tx).Update(task.ID, map[string]interface{}{
		"team_id": *teamID,
	})
	if err != nil {
		return false, err
	}
	summary.Updated++
	return true, nil
}

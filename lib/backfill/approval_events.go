package backfillhandler

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/db"
	auditstore "realloc-backend/lib/audit/store"
	taskeventstore "realloc-backend/lib/task-event/store"
	taskstore "realloc-backend/lib/task/store"
	"realloc-backend/lib/utils/helpers"
	"realloc-backend/models"
	backfillapimodels "realloc-backend/models/api/backfill"
	dbmodels "realloc-backend/models/db"
)

// runApprovalEvents varre os registros de auditoria cujo texto livre
// indica aprovação ou rejeição de tarefa e sintetiza o TaskStatusEvent
// ausente. A reexecução é protegida pela igualdade exata de
// (tarefa, instante): se já existe evento nesse ponto, o registro é
// pulado.
func (i impl) runApprovalEvents(ctx context.Context, opts backfillapimodels.RunOptions) (backfillapimodels.Summary, error) {
	summary := backfillapimodels.Summary{Job: backfillapimodels.JobApprovalEvents, DryRun: opts.DryRun}
	logger := i.GetLogger(summary.Job)
	batch := i.batchSize(opts)
	offset := 0
	for {
		if helpers.IsContextDone(ctx) {
			return summary, errors.New("job interrompido")
		}
		list, err := auditstore.NewInstance(db.DB).ListPage(offset, batch)
		if err != nil {
			return summary, err
		}
		if len(list) == 0 {
			return summary, nil
		}
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			for _, ev := range list {
				if opts.Limit > 0 && summary.Processed >= opts.Limit {
					return nil
				}
				summary.Processed++
				if err := i.backfillOneApprovalEvent(tx, ev, opts.DryRun, &summary); err != nil {
					summary.Errored++
					logger.WithError(err).
						WithField("audit_event_id", ev.ID).
						Error("erro ao reconciliar registro, seguindo para o próximo")
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
		offset += batch
	}
}

func (i impl) backfillOneApprovalEvent(tx *gorm.DB, ev dbmodels.AuditEvent, dryRun bool, summary *backfillapimodels.Summary) error {
	text := ev.Changes.Description
	outcome, ok := ClassifyOutcome(text)
	if !ok {
		summary.Skipped++
		return nil
	}

	tasks := taskstore.NewInstance(tx)
	var target *dbmodels.Task
	if ev.TaskID != nil && *ev.TaskID != "" {
		rec, err := tasks.GetByID(*ev.TaskID)
		if err != nil {
			return err
		}
		target = rec
	} else if ev.ReallocationID != nil && *ev.ReallocationID != "" {
		candidates, err := tasks.ListByRealloc(*ev.ReallocationID)
		if err != nil {
			return err
		}
		target, _ = ResolveTask(text, candidates)
	}
	if target == nil {
		// BackfillMatchNotFound: contado como pulado, não como erro
		summary.Skipped++
		return nil
	}

	events := taskeventstore.NewInstance(tx)
	exists, err := events.ExistsAt(target.ID, ev.CreatedAt)
	if err != nil {
		return err
	}
	if exists {
		summary.Skipped++
		return nil
	}
	if dryRun {
		summary.Created++
		return nil
	}
	_, err = events.Create(dbmodels.TaskStatusEvent{
		TaskID:         target.ID,
		ReallocationID: target.ReallocationID,
		PreviousStatus: models.TaskStatusPendente,
		NewStatus:      outcome,
		OccurredAt:     ev.CreatedAt,
		ResponsibleID:  ev.ResponsibleID,
	})
	if err != nil {
		return err
	}
	summary.Created++
	return nil
}

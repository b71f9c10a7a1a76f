package deduphandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realloc-backend/db"
	audithandler "realloc-backend/lib/audit"
	reallocstore "realloc-backend/lib/realloc/store"
	statushandler "realloc-backend/lib/status"
	taskeventstore "realloc-backend/lib/task-event/store"
	taskstore "realloc-backend/lib/task/store"
	"realloc-backend/lib/utils/helpers"
	"realloc-backend/models"
	reallocapimodels "realloc-backend/models/api/realloc"
	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	DeduplicateRealloc(reallocationID string) (reallocapimodels.DedupSummary, error)
	DeduplicateAll(ctx context.Context, batchSize int) (reallocapimodels.DedupSummary, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) GetLogger(reallocationID string) *log.Entry {
	logger := log.
		WithField("realloc_id", reallocationID)
	return logger
}

func (i impl) DeduplicateRealloc(reallocationID string) (reallocapimodels.DedupSummary, error) {
	summary := reallocapimodels.DedupSummary{}
	rec, err := reallocstore.NewInstance(db.DB).GetByID(reallocationID)
	if err != nil {
		return summary, err
	}
	if rec == nil {
		return summary, errors.New("realocação não encontrada")
	}
	cancelled, previous, current, changed, err := i.deduplicateOne(*rec)
	if err != nil {
		return summary, err
	}
	summary.Processed = 1
	summary.Cancelled = len(cancelled)
	i.afterCommit(*rec, cancelled, previous, current, changed)
	return summary, nil
}

// deduplicateOne resolve as duplicatas de uma realocação dentro de uma
// única transação, junto com o recálculo do status, para que tarefas e
// status nunca divirjam. Os efeitos de melhor esforço (auditoria,
// notificação) ficam para depois do commit.
func (i impl) deduplicateOne(rec dbmodels.EmployeeReallocation) (cancelled []Cancellation, previous, current models.ReallocTaskStatus, changed bool, err error) {
	previous = rec.TaskStatus
	current = rec.TaskStatus
	if !rec.OpenForTaskMutation() {
		return nil, previous, current, false, nil
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		tasks, err := taskstore.NewInstance(tx).ListByRealloc(rec.ID)
		if err != nil {
			return err
		}
		cancelled = PlanCancellations(tasks)
		now := time.Now()
		for _, c := range cancelled {
			task := c.Task
			task.AppendObservation(fmt.Sprintf("cancelada pela deduplicação automática, chave=%s", c.Key), now)
			err = taskstore.NewInstance(tx).Update(task.ID, map[string]interface{}{
				"status":       models.TaskStatusCancelada,
				"observations": task.Observations,
			})
			if err != nil {
				return err
			}
			_, err = taskeventstore.NewInstance(tx).Create(dbmodels.TaskStatusEvent{
				TaskID:         task.ID,
				ReallocationID: rec.ID,
				PreviousStatus: models.TaskStatusPendente,
				NewStatus:      models.TaskStatusCancelada,
				OccurredAt:     now,
			})
			if err != nil {
				return err
			}
		}
		current, changed, err = statushandler.Instance.RecomputeTx(tx, rec)
		return err
	})
	if err != nil {
		return nil, previous, previous, false, err
	}
	return cancelled, previous, current, changed, nil
}

func (i impl) afterCommit(rec dbmodels.EmployeeReallocation, cancelled []Cancellation, previous, current models.ReallocTaskStatus, changed bool) {
	for _, c := range cancelled {
		taskID := c.Task.ID
		audithandler.Instance.Record(dbmodels.AuditEvent{
			Action:     models.AuditActionUpdateStatus,
			EntityType: models.EntityTask,
			EntityID:   taskID,
			Changes: dbmodels.EntityChanges{
				Description: fmt.Sprintf("tarefa duplicada cancelada, mantida a tarefa %s da chave %s", c.Survivor.ID, c.Key),
				Data: []dbmodels.FieldChanges{
					{Field: "status", OldValue: models.TaskStatusPendente, NewValue: models.TaskStatusCancelada},
				},
			},
			RequestID:      &rec.RequestID,
			ReallocationID: &rec.ID,
			TaskID:         &taskID,
		})
	}
	if changed {
		statushandler.Instance.NotifyChange(rec, previous, current)
	}
}

// DeduplicateAll é a variante em lote usada pela varredura global: pagina
// as realocações abertas e o erro de uma não interrompe as demais.
func (i impl) DeduplicateAll(ctx context.Context, batchSize int) (reallocapimodels.DedupSummary, error) {
	summary := reallocapimodels.DedupSummary{}
	if batchSize <= 0 {
		batchSize = 100
	}
	total, err := reallocstore.NewInstance(db.DB).CountOpen()
	if err != nil {
		return summary, err
	}
	log.WithField("open_reallocations", total).Info("varredura de deduplicação iniciada")
	offset := 0
	for {
		if helpers.IsContextDone(ctx) {
			return summary, errors.New("varredura de deduplicação interrompida")
		}
		list, err := reallocstore.NewInstance(db.DB).ListOpen(offset, batchSize)
		if err != nil {
			return summary, err
		}
		if len(list) == 0 {
			return summary, nil
		}
		for _, rec := range list {
			cancelled, previous, current, changed, err := i.deduplicateOne(rec)
			if err != nil {
				summary.Unresolved++
				i.GetLogger(rec.ID).WithError(err).Error("erro ao deduplicar realocação, seguindo para a próxima")
				continue
			}
			summary.Processed++
			summary.Cancelled += len(cancelled)
			i.afterCommit(rec, cancelled, previous, current, changed)
		}
		offset += batchSize
	}
}

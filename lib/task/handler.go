package taskhandler

import (
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
	"realloc-backend/models"
	reallocapimodels "realloc-backend/models/api/realloc"
	dbmodels "realloc-backend/models/db"
)

// Operações manuais sobre tarefas: criação avulsa, conclusão pelo setor
// responsável e cancelamento manual. Toda transição passa pelo recálculo
// do status da realocação na mesma transação.
type Provider interface {
	Get(reallocationID string) (*reallocapimodels.ReallocView, error)
	AddManual(reallocationID string, data reallocapimodels.ManualTaskData, accountID *string) (id string, err error)
	Complete(taskID string, accountID *string) error
	Cancel(taskID string, reason string, accountID *string) error
	Timeline(taskID string) ([]reallocapimodels.TaskStatusEventView, error)
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

func (i impl) Get(reallocationID string) (*reallocapimodels.ReallocView, error) {
	rec, err := reallocstore.NewInstance(db.DB).GetByID(reallocationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	tasks, err := taskstore.NewInstance(db.DB).ListByRealloc(reallocationID)
	if err != nil {
		return nil, err
	}
	view := reallocapimodels.ReallocConvert(*rec, tasks)
	return &view, nil
}

func (i impl) AddManual(reallocationID string, data reallocapimodels.ManualTaskData, accountID *string) (string, error) {
	rec, err := reallocstore.NewInstance(db.DB).GetByID(reallocationID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("realocação não encontrada")
	}
	if !rec.OpenForTaskMutation() {
		return "", errors.New("realocação fechada para alteração de tarefas")
	}

	task := dbmodels.Task{
		ReallocationID: reallocationID,
		Type:           data.Type,
		Sector:         data.Sector,
		Status:         models.TaskStatusPendente,
		Priority:       data.Priority,
		DueDate:        data.DueDate,
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedia
	}

	previous := rec.TaskStatus
	var current models.ReallocTaskStatus
	var changed bool
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		id, err := taskstore.NewInstance(tx).Create(task)
		if err != nil {
			return err
		}
		task.ID = id
		current, changed, err = statushandler.Instance.RecomputeTx(tx, *rec)
		return err
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar tarefa manual")
	}

	audithandler.Instance.Record(dbmodels.AuditEvent{
		Action:     models.AuditActionCreate,
		EntityType: models.EntityTask,
		EntityID:   task.ID,
		Changes: dbmodels.EntityChanges{
			Description: fmt.Sprintf("tarefa manual criada: %s (%s)", task.Type, task.Sector),
		},
		ResponsibleID:  accountID,
		RequestID:      &rec.RequestID,
		ReallocationID: &rec.ID,
		TaskID:         &task.ID,
	})
	if changed {
		statushandler.Instance.NotifyChange(*rec, previous, current)
	}
	return task.ID, nil
}

func (i impl) Complete(taskID string, accountID *string) error {
	return i.transition(taskID, models.TaskStatusConcluida, "tarefa concluída pelo setor responsável", accountID)
}

func (i impl) Cancel(taskID string, reason string, accountID *string) error {
	description := "tarefa cancelada manualmente"
	if reason != "" {
		description = fmt.Sprintf("tarefa cancelada manualmente: %s", reason)
	}
	return i.transition(taskID, models.TaskStatusCancelada, description, accountID)
}

// transition aplica uma transição terminal à tarefa. Estado terminal não
// admite nova transição.
func (i impl) transition(taskID string, target models.TaskStatus, description string, accountID *string) error {
	task, err := taskstore.NewInstance(db.DB).GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.New("tarefa não encontrada")
	}
	if task.Status.IsTerminal() {
		return errors.Errorf("tarefa já está em estado terminal (%s)", task.Status)
	}
	rec, err := reallocstore.NewInstance(db.DB).GetByID(task.ReallocationID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("realocação da tarefa não encontrada")
	}
	if !rec.ApprovalStatus.AllowsTaskMutation() {
		return errors.Errorf("realocação em ciclo de aprovação (%s), tarefas bloqueadas", rec.ApprovalStatus)
	}

	previous := rec.TaskStatus
	var current models.ReallocTaskStatus
	var changed bool
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := taskstore.NewInstance(tx).Update(task.ID, map[string]interface{}{
			"status": target,
		})
		if err != nil {
			return err
		}
		_, err = taskeventstore.NewInstance(tx).Create(dbmodels.TaskStatusEvent{
			TaskID:         task.ID,
			ReallocationID: task.ReallocationID,
			PreviousStatus: task.Status,
			NewStatus:      target,
			OccurredAt:     now,
			ResponsibleID:  accountID,
		})
		if err != nil {
			return err
		}
		current, changed, err = statushandler.Instance.RecomputeTx(tx, *rec)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "erro ao transicionar tarefa")
	}

	audithandler.Instance.Record(dbmodels.AuditEvent{
		Action:     models.AuditActionUpdateStatus,
		EntityType: models.EntityTask,
		EntityID:   task.ID,
		Changes: dbmodels.EntityChanges{
			Description: description,
			Data: []dbmodels.FieldChanges{
				{Field: "status", OldValue: task.Status, NewValue: target},
			},
		},
		ResponsibleID:  accountID,
		RequestID:      &rec.RequestID,
		ReallocationID: &rec.ID,
		TaskID:         &task.ID,
	})
	if changed {
		statushandler.Instance.NotifyChange(*rec, previous, current)
	}
	return nil
}

func (i impl) Timeline(taskID string) ([]reallocapimodels.TaskStatusEventView, error) {
	list, err := taskeventstore.NewInstance(db.DB).ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	result := make([]reallocapimodels.TaskStatusEventView, 0, len(list))
	for _, rec := range list {
		result = append(result, reallocapimodels.TaskStatusEventConvert(rec))
	}
	return result, nil
}

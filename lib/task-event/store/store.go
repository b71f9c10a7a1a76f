package taskeventstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TaskStatusEvent) (id string, err error)
	ListByTask(taskID string) (list []dbmodels.TaskStatusEvent, err error)
	ExistsAt(taskID string, occurredAt time.Time) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TaskStatusEvent) (id string, err error) {
	err = i.db.
		Omit("Task", "Responsible").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByTask(taskID string) (list []dbmodels.TaskStatusEvent, err error) {
	list = []dbmodels.TaskStatusEvent{}
	err = i.db.
		Where("task_id = ?", taskID).
		Order("occurred_at ASC").
		Preload("Responsible").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// InstantKey reduz o instante à precisão de microssegundo que o banco
// guarda. Dois instantes com o mesmo InstantKey são o mesmo evento para o
// guard de reexecução.
func InstantKey(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

// ExistsAt protege a reexecução idempotente dos jobs de reconciliação:
// igualdade exata de (tarefa, instante).
func (i impl) ExistsAt(taskID string, occurredAt time.Time) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.TaskStatusEvent{}).
		Where("task_id = ?", taskID).
		Where("occurred_at = ?", InstantKey(occurredAt)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

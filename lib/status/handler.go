package statushandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realloc-backend/db"
	audithandler "realloc-backend/lib/audit"
	notifyhandler "realloc-backend/lib/notify"
	reallocstore "realloc-backend/lib/realloc/store"
	taskstore "realloc-backend/lib/task/store"
	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

// Agregador de status: recalcula o status do fluxo de tarefas de uma
// realocação a partir do conjunto atual de tarefas.
type Provider interface {
	Recompute(reallocationID string) (models.ReallocTaskStatus, error)
	RecomputeTx(tx *gorm.DB, rec dbmodels.EmployeeReallocation) (current models.ReallocTaskStatus, changed bool, err error)
	NotifyChange(rec dbmodels.EmployeeReallocation, previous, current models.ReallocTaskStatus)
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

// Decide aplica a regra de agregação: sem tarefa PENDENTE a realocação
// fica pronta para submissão, caso contrário segue tratando pendências.
// O estado inicial AGUARDANDO_APROVACAO só muda por comando externo.
func Decide(current models.ReallocTaskStatus, activeCount int64) models.ReallocTaskStatus {
	if current == models.ReallocTaskStatusAguardandoAprovacao {
		return current
	}
	if activeCount == 0 {
		return models.ReallocTaskStatusProntoParaSubmissao
	}
	return models.ReallocTaskStatusTratandoPendencias
}

// RecomputeTx roda dentro da transação da realocação, para que tarefas e
// status nunca fiquem inconsistentes entre si. A escrita é suprimida
// quando o valor calculado é igual ao atual.
func (i impl) RecomputeTx(tx *gorm.DB, rec dbmodels.EmployeeReallocation) (models.ReallocTaskStatus, bool, error) {
	activeCount, err := taskstore.NewInstance(tx).CountActive(rec.ID)
	if err != nil {
		return rec.TaskStatus, false, err
	}
	current := Decide(rec.TaskStatus, activeCount)
	if current == rec.TaskStatus {
		return current, false, nil
	}
	err = reallocstore.NewInstance(tx).Update(rec.ID, map[string]interface{}{
		"task_status": current,
	})
	if err != nil {
		return rec.TaskStatus, false, err
	}
	return current, true, nil
}

func (i impl) Recompute(reallocationID string) (models.ReallocTaskStatus, error) {
	rec, err := reallocstore.NewInstance(db.DB).GetByID(reallocationID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("realocação não encontrada")
	}
	previous := rec.TaskStatus
	var current models.ReallocTaskStatus
	var changed bool
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		current, changed, err = i.RecomputeTx(tx, *rec)
		return err
	})
	if err != nil {
		return "", err
	}
	if changed {
		i.NotifyChange(*rec, previous, current)
	}
	return current, nil
}

// NotifyChange registra a auditoria da transição e dispara a notificação
// de prontidão. Chamado depois do commit da transação principal.
func (i impl) NotifyChange(rec dbmodels.EmployeeReallocation, previous, current models.ReallocTaskStatus) {
	if previous == current {
		return
	}
	audithandler.Instance.Record(dbmodels.AuditEvent{
		Action:     models.AuditActionUpdateStatus,
		EntityType: models.EntityEmployeeReallocation,
		EntityID:   rec.ID,
		Changes: dbmodels.EntityChanges{
			Description: "status do fluxo de tarefas recalculado",
			Data: []dbmodels.FieldChanges{
				{Field: "task_status", OldValue: previous, NewValue: current},
			},
		},
		RequestID:      &rec.RequestID,
		ReallocationID: &rec.ID,
	})
	if current == models.ReallocTaskStatusProntoParaSubmissao {
		notifyhandler.Instance.ReallocReady(rec.ID)
	}
	i.GetLogger(rec.ID).
		WithField("previous", previous).
		WithField("current", current).
		Info("status do fluxo de tarefas atualizado")
}

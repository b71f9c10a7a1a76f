package dbmodels

import (
	"time"

	"realloc-backend/models"
)

// TaskStatusEvent é o retrato imutável de uma transição de status de
// tarefa, mantido fora do AuditEvent para consultas de linha do tempo sem
// varrer texto livre.
type TaskStatusEvent struct {
	BaseModel
	TaskID         string            `gorm:"type:varchar(36);index"`
	Task           *Task             `gorm:"foreignKey:TaskID"`
	ReallocationID string            `gorm:"type:varchar(36);index"`
	PreviousStatus models.TaskStatus `gorm:"type:varchar(20)"`
	NewStatus      models.TaskStatus `gorm:"type:varchar(20)"`
	OccurredAt     time.Time         `gorm:"index"`
	ResponsibleID  *string           `gorm:"type:varchar(36)"`
	Responsible    *SystemAccount    `gorm:"foreignKey:ResponsibleID"`
}

package dbmodels

import (
	"realloc-backend/models"
)

// ReallocationRequest é a solicitação de movimentação de um ou mais
// funcionários entre contratos. Nunca é removida, apenas substituída.
type ReallocationRequest struct {
	BaseModel
	OriginContractID      string                 `gorm:"type:varchar(36)"`
	DestinationContractID string                 `gorm:"type:varchar(36);index"`
	Justification         string                 `gorm:"type:text"`
	Priority              models.RequestPriority `gorm:"type:varchar(20)"`
	Status                models.RequestStatus   `gorm:"type:varchar(20)"`
	RequesterID           string                 `gorm:"type:varchar(36)"`
	Requester             *Employee              `gorm:"foreignKey:RequesterID"`
	Employees             []EmployeeReallocation `gorm:"foreignKey:RequestID"`
}

// EmployeeReallocation é a participação de um funcionário em uma
// solicitação. Invariante: um registro ativo por (funcionário, solicitação
// aberta).
type EmployeeReallocation struct {
	BaseModel
	RequestID      string                   `gorm:"type:varchar(36);index"`
	Request        *ReallocationRequest     `gorm:"foreignKey:RequestID"`
	EmployeeID     string                   `gorm:"type:varchar(36);index"`
	Employee       *Employee                `gorm:"foreignKey:EmployeeID"`
	TeamID         *string                  `gorm:"type:varchar(36)"`
	Team           *Team                    `gorm:"foreignKey:TeamID"`
	TaskStatus     models.ReallocTaskStatus `gorm:"type:varchar(30);index"`
	ApprovalStatus models.ApprovalStatus    `gorm:"type:varchar(20);index"`
}

// OpenForTaskMutation indica se o derivador e o deduplicador podem mexer
// nas tarefas desta realocação.
func (r EmployeeReallocation) OpenForTaskMutation() bool {
	if !r.ApprovalStatus.AllowsTaskMutation() {
		return false
	}
	return r.TaskStatus != models.ReallocTaskStatusAguardandoAprovacao
}

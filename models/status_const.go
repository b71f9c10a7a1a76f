package models

// Status da tarefa. CONCLUIDA e CANCELADA são terminais.
type TaskStatus string

const (
	TaskStatusPendente  TaskStatus = "PENDENTE"
	TaskStatusConcluida TaskStatus = "CONCLUIDA"
	TaskStatusCancelada TaskStatus = "CANCELADA"
)

func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusConcluida || s == TaskStatusCancelada
}

// Status agregado do fluxo de tarefas de uma realocação.
type ReallocTaskStatus string

const (
	ReallocTaskStatusAguardandoAprovacao ReallocTaskStatus = "AGUARDANDO_APROVACAO"
	ReallocTaskStatusTratandoPendencias  ReallocTaskStatus = "TRATANDO_PENDENCIAS"
	ReallocTaskStatusProntoParaSubmissao ReallocTaskStatus = "PRONTO_PARA_SUBMISSAO"
)

// Ciclo de aprovação no Prestserv. Gerenciado externamente, usado aqui
// apenas como condição de guarda.
type ApprovalStatus string

const (
	ApprovalStatusPendente   ApprovalStatus = "PENDENTE"
	ApprovalStatusCriado     ApprovalStatus = "CRIADO"
	ApprovalStatusEmAnalise  ApprovalStatus = "EM_ANALISE"
	ApprovalStatusValidado   ApprovalStatus = "VALIDADO"
	ApprovalStatusInvalidado ApprovalStatus = "INVALIDADO"
	ApprovalStatusCancelado  ApprovalStatus = "CANCELADO"
)

// AllowsTaskMutation indica se a realocação ainda aceita criação ou
// cancelamento de tarefas.
func (s ApprovalStatus) AllowsTaskMutation() bool {
	switch s {
	case ApprovalStatusEmAnalise, ApprovalStatusValidado, ApprovalStatusCancelado:
		return false
	}
	return true
}

type RequestStatus string

const (
	RequestStatusPendente  RequestStatus = "PENDENTE"
	RequestStatusAprovada  RequestStatus = "APROVADA"
	RequestStatusRejeitada RequestStatus = "REJEITADA"
	RequestStatusConcluida RequestStatus = "CONCLUIDA"
)

type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdateStatus AuditAction = "UPDATE_STATUS"
	AuditActionUpdateField  AuditAction = "UPDATE_FIELD"
	AuditActionDelete       AuditAction = "DELETE"
)

type EntityType string

const (
	EntityReallocationRequest  EntityType = "REALLOCATION_REQUEST"
	EntityEmployeeReallocation EntityType = "EMPLOYEE_REALLOCATION"
	EntityTask                 EntityType = "TASK"
)

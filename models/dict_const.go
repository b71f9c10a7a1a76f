package models

type Sector string

const (
	SectorRH          Sector = "RH"
	SectorMedicina    Sector = "MEDICINA"
	SectorTreinamento Sector = "TREINAMENTO"
)

type TaskPriority string

const (
	TaskPriorityBaixa   TaskPriority = "BAIXA"
	TaskPriorityMedia   TaskPriority = "MEDIA"
	TaskPriorityAlta    TaskPriority = "ALTA"
	TaskPriorityUrgente TaskPriority = "URGENTE"
)

type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "LOW"
	RequestPriorityNormal RequestPriority = "NORMAL"
	RequestPriorityHigh   RequestPriority = "HIGH"
	RequestPriorityUrgent RequestPriority = "URGENT"
)

// MapRequestPriority converte a prioridade da solicitação para a prioridade
// das tarefas geradas. Valores desconhecidos caem em MEDIA.
func MapRequestPriority(p RequestPriority) TaskPriority {
	switch p {
	case RequestPriorityLow:
		return TaskPriorityBaixa
	case RequestPriorityNormal:
		return TaskPriorityMedia
	case RequestPriorityHigh:
		return TaskPriorityAlta
	case RequestPriorityUrgent:
		return TaskPriorityUrgente
	}
	return TaskPriorityMedia
}

type ObligationType string

const (
	ObligationObrigatorio  ObligationType = "OBRIGATORIO"
	ObligationComplementar ObligationType = "COMPLEMENTAR"
	ObligationSobDemanda   ObligationType = "SOB_DEMANDA"
	ObligationNaoAplicavel ObligationType = "NAO_APLICAVEL"
)

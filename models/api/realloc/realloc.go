package reallocapimodels

import (
	"time"

	"github.com/pkg/errors"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

type TaskView struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	Sector       models.Sector       `json:"sector"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	TrainingID   *string             `json:"training_id,omitempty"`
	TrainingName string              `json:"training_name,omitempty"`
	Observations string              `json:"observations,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

func TaskConvert(rec dbmodels.Task) TaskView {
	view := TaskView{
		ID:           rec.ID,
		Type:         rec.Type,
		Sector:       rec.Sector,
		Status:       rec.Status,
		Priority:     rec.Priority,
		DueDate:      rec.DueDate,
		TrainingID:   rec.TrainingID,
		Observations: rec.Observations,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Training != nil {
		view.TrainingName = rec.Training.Name
	}
	return view
}

type ReallocView struct {
	ID             string                   `json:"id"`
	RequestID      string                   `json:"request_id"`
	EmployeeID     string                   `json:"employee_id"`
	EmployeeName   string                   `json:"employee_name,omitempty"`
	TaskStatus     models.ReallocTaskStatus `json:"task_status"`
	ApprovalStatus models.ApprovalStatus    `json:"approval_status"`
	Tasks          []TaskView               `json:"tasks,omitempty"`
}

func ReallocConvert(rec dbmodels.EmployeeReallocation, tasks []dbmodels.Task) ReallocView {
	view := ReallocView{
		ID:             rec.ID,
		RequestID:      rec.RequestID,
		EmployeeID:     rec.EmployeeID,
		TaskStatus:     rec.TaskStatus,
		ApprovalStatus: rec.ApprovalStatus,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.Name
	}
	for _, t := range tasks {
		view.Tasks = append(view.Tasks, TaskConvert(t))
	}
	return view
}

// DeriveData é o corpo da chamada de derivação de tarefas.
type DeriveData struct {
	ReallocationID string          `json:"reallocation_id,omitempty"` // vazio = todas as realocações abertas
	Sectors        []models.Sector `json:"sectors,omitempty"`         // vazio = todos os setores
}

type DeriveSummary struct {
	Processed      int             `json:"processed"`
	Created        int             `json:"created"`
	Errored        int             `json:"errored"`
	SectorsTouched []models.Sector `json:"sectors_touched"`
}

// ManualTaskData é o corpo da criação manual de tarefa.
type ManualTaskData struct {
	Type     string              `json:"type"`
	Sector   models.Sector       `json:"sector"`
	Priority models.TaskPriority `json:"priority,omitempty"`
	DueDate  *time.Time          `json:"due_date,omitempty"`
}

func (d ManualTaskData) Validate() error {
	if d.Type == "" {
		return errors.New("tipo da tarefa é obrigatório")
	}
	if d.Sector == "" {
		return errors.New("setor responsável é obrigatório")
	}
	return nil
}

type DedupSummary struct {
	Processed int `json:"processed"`
	Cancelled int `json:"cancelled"`
	// realocações cuja deduplicação falhou e ficou para a próxima varredura
	Unresolved int `json:"unresolved"`
}

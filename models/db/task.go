package dbmodels

import (
	"fmt"
	"time"

	"realloc-backend/models"
)

// Task é uma pendência de um setor para uma EmployeeReallocation.
// Invariante: dentro de uma realocação não há duas tarefas ativas com a
// mesma chave de deduplicação.
type Task struct {
	BaseModel
	ReallocationID string                `gorm:"type:varchar(36);index"`
	Reallocation   *EmployeeReallocation `gorm:"foreignKey:ReallocationID"`
	Type           string                `gorm:"type:varchar(255)"`
	Sector         models.Sector         `gorm:"type:varchar(50);index"`
	Status         models.TaskStatus     `gorm:"type:varchar(20);index"`
	Priority       models.TaskPriority   `gorm:"type:varchar(20)"`
	DueDate        *time.Time
	TrainingID     *string               `gorm:"type:varchar(36)"`
	Training       *Training             `gorm:"foreignKey:TrainingID"`
	TemplateID     *string               `gorm:"type:varchar(36)"`
	Template       *StandardTaskTemplate `gorm:"foreignKey:TemplateID"`
	TeamID         *string               `gorm:"type:varchar(36)"`
	Team           *Team                 `gorm:"foreignKey:TeamID"`
	Observations   string                `gorm:"type:text"`
}

// AppendObservation acrescenta uma anotação datada ao histórico livre da
// tarefa, sem apagar as anteriores.
func (t *Task) AppendObservation(note string, at time.Time) {
	line := fmt.Sprintf("[%s] %s", at.Format("2006-01-02 15:04:05"), note)
	if t.Observations == "" {
		t.Observations = line
		return
	}
	t.Observations = t.Observations + "\n" + line
}

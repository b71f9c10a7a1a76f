package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"realloc-backend/models"
)

// AuditEvent é o registro imutável de uma mutação. Somente inserção;
// nunca é alterado ou removido (exceto o preenchimento retroativo do
// responsável pelo job de reconciliação).
type AuditEvent struct {
	BaseModel
	Action         models.AuditAction `gorm:"type:varchar(20);index"`
	EntityType     models.EntityType  `gorm:"type:varchar(30);index"`
	EntityID       string             `gorm:"type:varchar(36);index"`
	Changes        EntityChanges      `gorm:"type:jsonb"`
	ResponsibleID  *string            `gorm:"type:varchar(36)"`
	Responsible    *SystemAccount     `gorm:"foreignKey:ResponsibleID"`
	RequestID      *string            `gorm:"type:varchar(36);index"`
	ReallocationID *string            `gorm:"type:varchar(36);index"`
	TaskID         *string            `gorm:"type:varchar(36);index"`
}

type EntityChanges struct {
	Description string         `json:"description"` // Comentário livre
	Data        []FieldChanges `json:"data"`        // Lista de alterações
}

type FieldChanges struct {
	Field    string `json:"field"`     // Campo alterado
	OldValue any    `json:"old_value"` // Valor anterior
	NewValue any    `json:"new_value"` // Valor novo
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

package dbmodels

import (
	"realloc-backend/models"
)

// Training é um treinamento do catálogo.
type Training struct {
	BaseModel
	Name   string        `gorm:"type:varchar(255)"`
	Sector models.Sector `gorm:"type:varchar(50)"`
	TeamID *string       `gorm:"type:varchar(36)"`
	Team   *Team         `gorm:"foreignKey:TeamID"`
}

// StandardTaskTemplate é a tarefa padrão de um setor. Somente leitura para
// o núcleo de orquestração.
type StandardTaskTemplate struct {
	BaseModel
	Sector      models.Sector `gorm:"type:varchar(50);index"`
	Type        string        `gorm:"type:varchar(255)"`
	Description string        `gorm:"type:text"`
	Active      bool          `gorm:"index"`
	TeamID      *string       `gorm:"type:varchar(36)"`
	Team        *Team         `gorm:"foreignKey:TeamID"`
}

// TrainingRequirement é a linha da matriz de treinamentos por
// (contrato, função). Somente leitura para o núcleo de orquestração.
type TrainingRequirement struct {
	BaseModel
	ContractID string                `gorm:"type:varchar(36);index:idx_training_req_lookup"`
	Role       string                `gorm:"type:varchar(255);index:idx_training_req_lookup"`
	TrainingID string                `gorm:"type:varchar(36)"`
	Training   *Training             `gorm:"foreignKey:TrainingID"`
	Obligation models.ObligationType `gorm:"type:varchar(20)"`
	Active     bool
}

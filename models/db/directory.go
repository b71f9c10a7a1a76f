package dbmodels

import (
	"realloc-backend/models"
)

// Team é a equipe responsável dentro de um setor.
type Team struct {
	BaseModel
	Name   string        `gorm:"type:varchar(255)"`
	Sector models.Sector `gorm:"type:varchar(50);index"`
	Active bool
}

// SystemAccount é a conta de acesso vinculada a um funcionário.
type SystemAccount struct {
	BaseModel
	UserName string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(255)"`
}

type Employee struct {
	BaseModel
	Name      string         `gorm:"type:varchar(255)"`
	Badge     string         `gorm:"type:varchar(50);index"` // matrícula
	Role      string         `gorm:"type:varchar(255)"`      // função
	AccountID *string        `gorm:"type:varchar(36)"`
	Account   *SystemAccount `gorm:"foreignKey:AccountID"`
}

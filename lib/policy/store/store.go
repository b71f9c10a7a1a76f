package policystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

// Leitura das regras de política: tarefas padrão por setor e matriz de
// treinamentos por (contrato, função).
type Provider interface {
	ListActiveTemplates(sector models.Sector) (list []dbmodels.StandardTaskTemplate, err error)
	ListMandatoryTrainings(contractID, role string) (list []dbmodels.TrainingRequirement, err error)
	GetTraining(id string) (rec *dbmodels.Training, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListActiveTemplates(sector models.Sector) (list []dbmodels.StandardTaskTemplate, err error) {
	list = []dbmodels.StandardTaskTemplate{}
	err = i.db.
		Where("sector = ?", sector).
		Where("active = ?", true).
		Order("type ASC").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListMandatoryTrainings(contractID, role string) (list []dbmodels.TrainingRequirement, err error) {
	list = []dbmodels.TrainingRequirement{}
	err = i.db.
		Where("contract_id = ?", contractID).
		Where("role = ?", role).
		Where("obligation = ?", models.ObligationObrigatorio).
		Where("active = ?", true).
		Preload("Training").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetTraining(id string) (*dbmodels.Training, error) {
	rec := dbmodels.Training{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

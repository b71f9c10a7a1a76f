package reallocstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmployeeReallocation) (id string, err error)
	GetByID(id string) (rec *dbmodels.EmployeeReallocation, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByRequest(requestID string) (list []dbmodels.EmployeeReallocation, err error)
	ListOpen(offset, limit int) (list []dbmodels.EmployeeReallocation, err error)
	CountOpen() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// aberto = ciclo de aprovação ainda permite mexer nas tarefas e a
// solicitação já foi aprovada
func (i impl) openScope(tx *gorm.DB) *gorm.DB {
	return tx.
		Where("approval_status NOT IN ?", []models.ApprovalStatus{
			models.ApprovalStatusEmAnalise,
			models.ApprovalStatusValidado,
			models.ApprovalStatusCancelado,
		}).
		Where("task_status <> ?", models.ReallocTaskStatusAguardandoAprovacao)
}

func (i impl) Create(rec dbmodels.EmployeeReallocation) (id string, err error) {
	err = i.db.
		Omit("Request", "Employee", "Team").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EmployeeReallocation, error) {
	rec := dbmodels.EmployeeReallocation{}
	err := i.db.
		Where("id = ?", id).
		Preload("Request").
		Preload("Employee").
		Preload("Employee.Account").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.EmployeeReallocation{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByRequest(requestID string) (list []dbmodels.EmployeeReallocation, err error) {
	list = []dbmodels.EmployeeReallocation{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Preload("Employee").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListOpen(offset, limit int) (list []dbmodels.EmployeeReallocation, err error) {
	list = []dbmodels.EmployeeReallocation{}
	tx := i.openScope(i.db).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Preload("Request").
		Preload("Employee")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CountOpen() (count int64, err error) {
	err = i.openScope(i.db.Model(&dbmodels.EmployeeReallocation{})).
		Count(&count).Error
	return count, err
}

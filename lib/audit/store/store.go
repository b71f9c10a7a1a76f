package auditstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuditEvent) (id string, err error)
	ListByRealloc(reallocationID string) (list []dbmodels.AuditEvent, err error)
	ListPage(offset, limit int) (list []dbmodels.AuditEvent, err error)
	ListWithoutResponsible(offset, limit int) (list []dbmodels.AuditEvent, err error)
	SetResponsible(id, accountID string) error
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditEvent) (id string, err error) {
	err = i.db.
		Omit("Responsible").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByRealloc(reallocationID string) (list []dbmodels.AuditEvent, err error) {
	list = []dbmodels.AuditEvent{}
	err = i.db.
		Where("reallocation_id = ?", reallocationID).
		Order("created_at ASC").
		Order("id ASC").
		Preload("Responsible").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListPage(offset, limit int) (list []dbmodels.AuditEvent, err error) {
	list = []dbmodels.AuditEvent{}
	err = i.db.
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListWithoutResponsible(offset, limit int) (list []dbmodels.AuditEvent, err error) {
	list = []dbmodels.AuditEvent{}
	err = i.db.
		Where("responsible_id IS NULL").
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// SetResponsible é usado apenas pelo job de reconciliação de responsável;
// fora dele o registro de auditoria nunca muda.
func (i impl) SetResponsible(id, accountID string) error {
	return i.db.
		Model(&dbmodels.AuditEvent{}).
		Where("id = ?", id).
		Update("responsible_id", accountID).
		Error
}

func (i impl) Count() (count int64, err error) {
	err = i.db.Model(&dbmodels.AuditEvent{}).Count(&count).Error
	return count, err
}

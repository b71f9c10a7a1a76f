package reallocrequeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ReallocationRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.ReallocationRequest, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ReallocationRequest) (id string, err error) {
	err = i.db.
		Omit("Requester", "Employees").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ReallocationRequest, error) {
	rec := dbmodels.ReallocationRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Requester").
		Preload("Requester.Account").
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
		Model(&dbmodels.ReallocationRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

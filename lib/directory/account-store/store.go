package accountstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.SystemAccount, err error)
	GetByEmployeeBadge(badge string) (rec *dbmodels.SystemAccount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.SystemAccount, error) {
	rec := dbmodels.SystemAccount{}
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

// GetByEmployeeBadge resolve a conta vinculada ao funcionário com a
// matrícula informada.
func (i impl) GetByEmployeeBadge(badge string) (*dbmodels.SystemAccount, error) {
	emp := dbmodels.Employee{}
	err := i.db.
		Where("badge = ?", badge).
		Preload("Account").
		First(&emp).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return emp.Account, nil
}

package teamstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/lib/utils/textnorm"
	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Team, err error)
	ListActive() (list []dbmodels.Team, err error)
	FindBySector(sector models.Sector) (rec *dbmodels.Team, err error)
	FindByKeyword(keyword string) (rec *dbmodels.Team, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Team, error) {
	rec := dbmodels.Team{}
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

func (i impl) ListActive() (list []dbmodels.Team, err error) {
	list = []dbmodels.Team{}
	err = i.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) FindBySector(sector models.Sector) (*dbmodels.Team, error) {
	rec := dbmodels.Team{}
	err := i.db.
		Where("sector = ?", sector).
		Where("active = ?", true).
		Order("created_at ASC").
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

// FindByKeyword resolve a equipe pelo nome, com casamento normalizado nos
// dois sentidos. Usado pelos jobs de reconciliação.
func (i impl) FindByKeyword(keyword string) (*dbmodels.Team, error) {
	list, err := i.ListActive()
	if err != nil {
		return nil, err
	}
	for idx := range list {
		if textnorm.ContainsEitherWay(list[idx].Name, keyword) {
			return &list[idx], nil
		}
	}
	return nil, nil
}

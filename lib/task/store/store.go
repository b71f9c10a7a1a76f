package taskstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	CreateBatch(recs []dbmodels.Task) error
	GetByID(id string) (rec *dbmodels.Task, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByRealloc(reallocationID string) (list []dbmodels.Task, err error)
	ListWithoutTeam(offset, limit int) (list []dbmodels.Task, err error)
	CountActive(reallocationID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (id string, err error) {
	err = i.db.
		Omit("Reallocation", "Training", "Template", "Team").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateBatch(recs []dbmodels.Task) error {
	if len(recs) == 0 {
		return nil
	}
	return i.db.
		Omit("Reallocation", "Training", "Template", "Team").
		Create(&recs).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Task, error) {
	rec := dbmodels.Task{}
	err := i.db.
		Where("id = ?", id).
		Preload("Training").
		Preload("Template").
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
		Model(&dbmodels.Task{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByRealloc(reallocationID string) (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	tx := i.db.
		Where("reallocation_id = ?", reallocationID).
		Order("created_at ASC").
		Order("id ASC").
		Preload("Training")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListWithoutTeam(offset, limit int) (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	err = i.db.
		Where("team_id IS NULL").
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Preload("Training").
		Preload("Template").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CountActive(reallocationID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Task{}).
		Where("reallocation_id = ?", reallocationID).
		Where("status = ?", models.TaskStatusPendente).
		Count(&count).Error
	return count, err
}

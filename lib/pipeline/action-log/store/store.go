package actionlogstore

import (
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Append(rec dbmodels.ActionLog) error
	ListByApplication(applicationID string) (list []dbmodels.ActionLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(rec dbmodels.ActionLog) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ActionLog, err error) {
	list = []dbmodels.ActionLog{}
	err = i.db.
		Model(&dbmodels.ActionLog{}).
		Where("application_id = ?", applicationID).
		Order("created_at, id").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

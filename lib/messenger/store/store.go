package messagestore

import (
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Message) (id string, err error)
	ListByApplication(applicationID string) (list []dbmodels.Message, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Message) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Message, err error) {
	list = []dbmodels.Message{}
	err = i.db.
		Model(&dbmodels.Message{}).
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

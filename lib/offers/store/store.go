package offerstore

import (
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Offer) (id string, err error)
	GetLatestByApplication(applicationID string) (*dbmodels.Offer, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Offer) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetLatestByApplication(applicationID string) (*dbmodels.Offer, error) {
	rec := dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
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

package stagecatalogstore

import (
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	List(companyID *string, includeInactive bool) (list []dbmodels.PipelineStage, err error)
	GetByID(companyID, id string) (*dbmodels.PipelineStage, error)
	Update(companyID, id string, updMap map[string]interface{}) error
	UpdatePositions(companyID string, slugs []string) error
	ProvisionFromDefaults(companyID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(companyID *string, includeInactive bool) (list []dbmodels.PipelineStage, err error) {
	list = []dbmodels.PipelineStage{}
	tx := i.db.Model(&dbmodels.PipelineStage{})
	if companyID == nil {
		tx = tx.Where("company_id is null")
	} else {
		tx = tx.Where("company_id = ?", *companyID)
	}
	if !includeInactive {
		tx = tx.Where("active = true")
	}
	err = tx.
		Order("position, slug").
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

func (i impl) GetByID(companyID, id string) (*dbmodels.PipelineStage, error) {
	rec := dbmodels.PipelineStage{}
	err := i.db.
		Model(&dbmodels.PipelineStage{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.PipelineStage{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("stage not found")
	}
	return nil
}

// UpdatePositions rewrites the position of every listed slug in one
// transaction. Slugs absent from the list keep their position.
func (i impl) UpdatePositions(companyID string, slugs []string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		for idx, slug := range slugs {
			err := tx.
				Model(&dbmodels.PipelineStage{}).
				Where("company_id = ?", companyID).
				Where("slug = ?", slug).
				Update("position", idx+1).
				Error
			if err != nil {
				return errors.Wrapf(err, "failed to reposition stage %v", slug)
			}
		}
		return nil
	})
}

// ProvisionFromDefaults copies every global default stage into the company
// scope. The existence check runs inside the same transaction as the insert,
// a prior check outside it is not enough under concurrent first use.
func (i impl) ProvisionFromDefaults(companyID string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&dbmodels.PipelineStage{}).
			Where("company_id = ?", companyID).
			Count(&count).
			Error
		if err != nil {
			return errors.Wrap(err, "failed to check company stage set")
		}
		if count > 0 {
			return nil
		}
		defaults := []dbmodels.PipelineStage{}
		err = tx.Model(&dbmodels.PipelineStage{}).
			Where("company_id is null").
			Order("position, slug").
			Find(&defaults).
			Error
		if err != nil {
			return errors.Wrap(err, "failed to load default stages")
		}
		for _, def := range defaults {
			rec := dbmodels.PipelineStage{
				CompanyID:  &companyID,
				Name:       def.Name,
				Slug:       def.Slug,
				Position:   def.Position,
				IsTerminal: def.IsTerminal,
				Active:     def.Active,
				IsDefault:  def.IsDefault,
			}
			if err = tx.Create(&rec).Error; err != nil {
				return errors.Wrapf(err, "failed to copy stage %v", def.Slug)
			}
		}
		return nil
	})
}

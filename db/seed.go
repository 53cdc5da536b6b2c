package db

import (
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDefaultStages inserts the global default pipeline stages. Existing
// rows are left untouched, so re-running migrations never resets a stage
// that an administrator renamed or deactivated.
func SeedDefaultStages() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		for _, seed := range dbmodels.DefaultStageSeeds {
			var exists bool
			err := tx.Model(&dbmodels.PipelineStage{}).
				Select("count(*) > 0").
				Where("company_id is null").
				Where("slug = ?", seed.Slug).
				Find(&exists).
				Error
			if err != nil {
				return errors.Wrapf(err, "failed to check stage %v", seed.Slug)
			}
			if exists {
				continue
			}
			rec := dbmodels.PipelineStage{
				CompanyID:  nil,
				Name:       seed.Name,
				Slug:       seed.Slug,
				Position:   seed.Position,
				IsTerminal: seed.IsTerminal,
				Active:     true,
				IsDefault:  true,
			}
			if err = tx.Create(&rec).Error; err != nil {
				return errors.Wrapf(err, "failed to seed stage %v", seed.Slug)
			}
		}
		log.Info("default pipeline stages seeded")
		return nil
	})
}

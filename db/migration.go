package db

import (
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "failed to migrate Company")
	}
	if err := DB.AutoMigrate(&dbmodels.Graduate{}); err != nil {
		return errors.Wrap(err, "failed to migrate Graduate")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "failed to migrate Job")
	}
	if err := DB.AutoMigrate(&dbmodels.PipelineStage{}); err != nil {
		return errors.Wrap(err, "failed to migrate PipelineStage")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "failed to migrate JobApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.StageLog{}); err != nil {
		return errors.Wrap(err, "failed to migrate StageLog")
	}
	if err := DB.AutoMigrate(&dbmodels.ActionLog{}); err != nil {
		return errors.Wrap(err, "failed to migrate ActionLog")
	}
	if err := DB.AutoMigrate(&dbmodels.Offer{}); err != nil {
		return errors.Wrap(err, "failed to migrate Offer")
	}
	if err := DB.AutoMigrate(&dbmodels.Message{}); err != nil {
		return errors.Wrap(err, "failed to migrate Message")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "failed to migrate Notification")
	}
	if err := SeedDefaultStages(); err != nil {
		return err
	}
	log.Info("migrations finished")
	return nil
}

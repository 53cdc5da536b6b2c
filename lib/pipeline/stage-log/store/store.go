package stagelogstore

import (
	"time"

	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Append(applicationID string, fromStage *string, toStage string, changedBy *string) error
	IsDuplicate(applicationID string, fromStage *string, toStage string, window time.Duration) (bool, error)
	ListByApplication(applicationID string) (list []dbmodels.StageLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(applicationID string, fromStage *string, toStage string, changedBy *string) error {
	rec := dbmodels.StageLog{
		ApplicationID: applicationID,
		FromStage:     fromStage,
		ToStage:       toStage,
		ChangedBy:     changedBy,
	}
	return i.db.
		Create(&rec).
		Error
}

// IsDuplicate reports whether the most recent entry for the application has
// the same (from, to) pair and is newer than now-window. Guards against
// double-submit from the UI.
func (i impl) IsDuplicate(applicationID string, fromStage *string, toStage string, window time.Duration) (bool, error) {
	last := dbmodels.StageLog{}
	err := i.db.
		Model(&dbmodels.StageLog{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc, id desc").
		First(&last).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if last.ToStage != toStage {
		return false, nil
	}
	if (last.FromStage == nil) != (fromStage == nil) {
		return false, nil
	}
	if last.FromStage != nil && *last.FromStage != *fromStage {
		return false, nil
	}
	return time.Since(last.CreatedAt) < window, nil
}

// ListByApplication returns the full stage chain in commit order; funnel
// consumers rely on this ordering for duration computations.
func (i impl) ListByApplication(applicationID string) (list []dbmodels.StageLog, err error) {
	list = []dbmodels.StageLog{}
	err = i.db.
		Model(&dbmodels.StageLog{}).
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

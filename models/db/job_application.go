package dbmodels

import (
	"peso-backend/models"
	"time"
)

type JobApplication struct {
	BaseModel
	JobID        string `gorm:"type:varchar(36);index"`
	Job          *Job   `gorm:"foreignKey:JobID"`
	GraduateID   string `gorm:"type:varchar(36);index"`
	Graduate     *Graduate
	CurrentStage string                   `gorm:"type:varchar(100);default:applied"`
	Status       models.ApplicationStatus `gorm:"type:varchar(50);default:applied"`
	CoverLetter  string
	ArchivedAt   *time.Time
}

// GetStage is the operational stage slug, defaulting to "applied" for rows
// created before the pipeline existed.
func (a JobApplication) GetStage() string {
	if a.CurrentStage == "" {
		return models.StageApplied
	}
	return a.CurrentStage
}

func (a JobApplication) CompanyID() *string {
	if a.Job == nil || a.Job.CompanyID == "" {
		return nil
	}
	id := a.Job.CompanyID
	return &id
}

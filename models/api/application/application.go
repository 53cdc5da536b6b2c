package applicationapimodels

import (
	"peso-backend/models"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
)

type CreateData struct {
	JobID       string `json:"job_id"`
	GraduateID  string `json:"graduate_id"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

func (d CreateData) Validate() error {
	if d.JobID == "" {
		return errors.New("job id is required")
	}
	if d.GraduateID == "" {
		return errors.New("graduate id is required")
	}
	return nil
}

type ApplicationView struct {
	ID           string                   `json:"id"`
	JobID        string                   `json:"job_id"`
	JobTitle     string                   `json:"job_title,omitempty"`
	CompanyName  string                   `json:"company_name,omitempty"`
	GraduateID   string                   `json:"graduate_id"`
	GraduateName string                   `json:"graduate_name,omitempty"`
	CurrentStage string                   `json:"current_stage"`
	Status       models.ApplicationStatus `json:"status"`
	ArchivedAt   *string                  `json:"archived_at,omitempty"`
}

func Convert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:           rec.ID,
		JobID:        rec.JobID,
		GraduateID:   rec.GraduateID,
		CurrentStage: rec.GetStage(),
		Status:       rec.Status,
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
		if rec.Job.Company != nil {
			view.CompanyName = rec.Job.Company.Name
		}
	}
	if rec.Graduate != nil {
		view.GraduateName = rec.Graduate.GetFullName()
	}
	if rec.ArchivedAt != nil {
		archived := rec.ArchivedAt.Format("2006-01-02 15:04:05")
		view.ArchivedAt = &archived
	}
	return view
}

package applicationstore

import (
	"peso-backend/models"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByCompany(companyID string) (list []dbmodels.JobApplication, err error)
	StageCounts(companyID string) (counts map[string]int64, err error)
	FinalizeHire(id, graduateID, jobTitle string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Preload("Job").
		Preload("Job.Company").
		Preload("Graduate").
		Preload("Graduate.User").
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
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Model(&dbmodels.JobApplication{}).
		Joins("left join jobs on job_applications.job_id = jobs.id").
		Where("jobs.company_id = ?", companyID).
		Preload("Job").
		Preload("Graduate").
		Order("job_applications.created_at").
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

func (i impl) StageCounts(companyID string) (map[string]int64, error) {
	type row struct {
		CurrentStage string
		Cnt          int64
	}
	rows := []row{}
	err := i.db.
		Model(&dbmodels.JobApplication{}).
		Select("current_stage, count(*) as cnt").
		Joins("left join jobs on job_applications.job_id = jobs.id").
		Where("jobs.company_id = ?", companyID).
		Group("current_stage").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.CurrentStage] = r.Cnt
	}
	return counts, nil
}

// FinalizeHire re-asserts the hired status and updates the graduate's
// profile fields in a single transaction. Historical experience records are
// not created here, only the two profile fields change.
func (i impl) FinalizeHire(id, graduateID, jobTitle string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.JobApplication{}).
			Where("id = ?", id).
			Update("status", models.ApplicationStatusHired).
			Error
		if err != nil {
			return errors.Wrap(err, "failed to re-assert hired status")
		}
		err = tx.
			Model(&dbmodels.Graduate{}).
			Where("id = ?", graduateID).
			Updates(map[string]interface{}{
				"current_job_title": jobTitle,
				"employment_status": models.EmploymentStatusEmployed,
			}).
			Error
		if err != nil {
			return errors.Wrap(err, "failed to update graduate profile")
		}
		return nil
	})
}

package applications

import (
	"peso-backend/db"
	applicationstore "peso-backend/lib/applications/store"
	stagelogstore "peso-backend/lib/pipeline/stage-log/store"
	"peso-backend/models"
	applicationapimodels "peso-backend/models/api/application"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data applicationapimodels.CreateData) (id string, err error)
	GetByID(id string) (applicationapimodels.ApplicationView, error)
	ListByCompany(companyID string) (list []applicationapimodels.ApplicationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         applicationstore.NewInstance(db.DB),
		stageLogStore: stagelogstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         applicationstore.Provider
	stageLogStore stagelogstore.Provider
}

// Create registers a new application at the "applied" stage and writes the
// creation entry of its stage chain (from=nil).
func (i impl) Create(data applicationapimodels.CreateData) (id string, err error) {
	logger := log.WithField("job_id", data.JobID).
		WithField("graduate_id", data.GraduateID)
	rec := dbmodels.JobApplication{
		JobID:        data.JobID,
		GraduateID:   data.GraduateID,
		CurrentStage: models.StageApplied,
		Status:       models.ApplicationStatusApplied,
		CoverLetter:  data.CoverLetter,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create application")
		return "", errors.New("failed to create application")
	}
	err = i.stageLogStore.Append(id, nil, models.StageApplied, nil)
	if err != nil {
		// the application exists, the missing creation entry is logged only
		logger.WithError(err).
			WithField("application_id", id).
			Error("failed to write creation stage log entry")
	}
	return id, nil
}

func (i impl) GetByID(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.New("application not found")
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) ListByCompany(companyID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, nil
}

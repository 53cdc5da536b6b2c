package applications

import (
	"testing"
	"time"

	applicationapimodels "peso-backend/models/api/application"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created   []dbmodels.JobApplication
	createErr error
	byID      map[string]*dbmodels.JobApplication
}

func (f *fakeStore) Create(rec dbmodels.JobApplication) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	rec.ID = "app-1"
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return f.byID[id], nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeStore) ListByCompany(companyID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeStore) StageCounts(companyID string) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeStore) FinalizeHire(id, graduateID, jobTitle string) error {
	return nil
}

type appendCall struct {
	applicationID string
	from          *string
	to            string
}

type fakeLog struct {
	appends   []appendCall
	appendErr error
}

func (f *fakeLog) Append(applicationID string, fromStage *string, toStage string, changedBy *string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends = append(f.appends, appendCall{applicationID: applicationID, from: fromStage, to: toStage})
	return nil
}

func (f *fakeLog) IsDuplicate(applicationID string, fromStage *string, toStage string, window time.Duration) (bool, error) {
	return false, nil
}

func (f *fakeLog) ListByApplication(applicationID string) ([]dbmodels.StageLog, error) {
	return nil, nil
}

func TestCreate(t *testing.T) {
	t.Run(`new application starts at applied with a creation entry`, func(t *testing.T) {
		store := &fakeStore{}
		stageLog := &fakeLog{}
		handler := impl{store: store, stageLogStore: stageLog}

		id, err := handler.Create(applicationapimodels.CreateData{
			JobID:       "job-1",
			GraduateID:  "grad-1",
			CoverLetter: "I would love to join.",
		})
		require.Nil(t, err)
		require.Equal(t, "app-1", id)

		require.Len(t, store.created, 1)
		rec := store.created[0]
		require.Equal(t, "applied", rec.CurrentStage)
		require.EqualValues(t, "applied", rec.Status)
		require.Nil(t, rec.ArchivedAt)

		require.Len(t, stageLog.appends, 1)
		entry := stageLog.appends[0]
		require.Equal(t, "app-1", entry.applicationID)
		require.Nil(t, entry.from, "creation entry has no source stage")
		require.Equal(t, "applied", entry.to)
	})

	t.Run(`store failure creates nothing`, func(t *testing.T) {
		store := &fakeStore{createErr: errors.New("db down")}
		stageLog := &fakeLog{}
		handler := impl{store: store, stageLogStore: stageLog}

		_, err := handler.Create(applicationapimodels.CreateData{JobID: "job-1", GraduateID: "grad-1"})
		require.NotNil(t, err)
		require.Empty(t, stageLog.appends)
	})

	t.Run(`a failed creation entry does not fail the intake`, func(t *testing.T) {
		store := &fakeStore{}
		stageLog := &fakeLog{appendErr: errors.New("log table gone")}
		handler := impl{store: store, stageLogStore: stageLog}

		id, err := handler.Create(applicationapimodels.CreateData{JobID: "job-1", GraduateID: "grad-1"})
		require.Nil(t, err)
		require.Equal(t, "app-1", id)
	})
}

func TestGetByID(t *testing.T) {
	t.Run(`view carries the joined names`, func(t *testing.T) {
		store := &fakeStore{byID: map[string]*dbmodels.JobApplication{
			"app-1": {
				BaseModel:    dbmodels.BaseModel{ID: "app-1"},
				JobID:        "job-1",
				Job:          &dbmodels.Job{Title: "Office Clerk", Company: &dbmodels.Company{Name: "Acme"}},
				GraduateID:   "grad-1",
				Graduate:     &dbmodels.Graduate{FirstName: "Juan", LastName: "Dela Cruz"},
				CurrentStage: "screening",
				Status:       "screening",
			},
		}}
		handler := impl{store: store, stageLogStore: &fakeLog{}}

		view, err := handler.GetByID("app-1")
		require.Nil(t, err)
		require.Equal(t, "Office Clerk", view.JobTitle)
		require.Equal(t, "Acme", view.CompanyName)
		require.Equal(t, "Juan Dela Cruz", view.GraduateName)
		require.Equal(t, "screening", view.CurrentStage)
		require.Nil(t, view.ArchivedAt)
	})

	t.Run(`missing application is an error`, func(t *testing.T) {
		handler := impl{store: &fakeStore{byID: map[string]*dbmodels.JobApplication{}}, stageLogStore: &fakeLog{}}
		_, err := handler.GetByID("nope")
		require.NotNil(t, err)
	})
}

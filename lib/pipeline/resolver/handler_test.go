package resolver

import (
	"context"
	"testing"

	actioncatalog "peso-backend/lib/pipeline/action-catalog"
	"peso-backend/models"
	pipelineapimodels "peso-backend/models/api/pipeline"
	dbmodels "peso-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeStageCatalog struct {
	stages []dbmodels.PipelineStage
	err    error
}

func (f fakeStageCatalog) StagesFor(companyID *string) ([]dbmodels.PipelineStage, error) {
	return f.stages, f.err
}

func (f fakeStageCatalog) AllStagesFor(companyID *string) ([]dbmodels.PipelineStage, error) {
	return f.stages, f.err
}

func (f fakeStageCatalog) EnsureProvisioned(ctx context.Context, companyID string) error {
	return nil
}

func (f fakeStageCatalog) UpdateStage(companyID, id string, data pipelineapimodels.StageUpdateData) error {
	return nil
}

func (f fakeStageCatalog) Reorder(companyID string, slugs []string) error {
	return nil
}

func defaultStages() []dbmodels.PipelineStage {
	stages := make([]dbmodels.PipelineStage, 0, len(dbmodels.DefaultStageSeeds))
	for _, seed := range dbmodels.DefaultStageSeeds {
		stages = append(stages, dbmodels.PipelineStage{
			Name:       seed.Name,
			Slug:       seed.Slug,
			Position:   seed.Position,
			IsTerminal: seed.IsTerminal,
			Active:     true,
		})
	}
	return stages
}

func withoutSlug(stages []dbmodels.PipelineStage, slug string) []dbmodels.PipelineStage {
	result := make([]dbmodels.PipelineStage, 0, len(stages))
	for _, stage := range stages {
		if stage.Slug == slug {
			continue
		}
		result = append(result, stage)
	}
	return result
}

func newResolver(stages []dbmodels.PipelineStage) impl {
	actioncatalog.NewHandler()
	return impl{
		actionCatalog: actioncatalog.Instance,
		stageCatalog:  fakeStageCatalog{stages: stages},
	}
}

func appAtStage(stage string) dbmodels.JobApplication {
	return dbmodels.JobApplication{
		BaseModel:    dbmodels.BaseModel{ID: "app-1"},
		CurrentStage: stage,
	}
}

func findAction(t *testing.T, list []pipelineapimodels.ActionView, key string) pipelineapimodels.ActionView {
	t.Helper()
	for _, action := range list {
		if action.Key == key {
			return action
		}
	}
	t.Fatalf("action %v not offered", key)
	return pipelineapimodels.ActionView{}
}

func hasAction(list []pipelineapimodels.ActionView, key string) bool {
	for _, action := range list {
		if action.Key == key {
			return true
		}
	}
	return false
}

func TestResolve(t *testing.T) {
	t.Run(`move-next targets the immediate successor`, func(t *testing.T) {
		r := newResolver(defaultStages())
		list := r.resolveFor(appAtStage(models.StageApplied))
		move := findAction(t, list, actioncatalog.MoveNextKey)
		require.Equal(t, models.StageScreening, move.TargetStage)
		require.Equal(t, "Move to Screening", move.Label)
		require.Equal(t, models.ActionKindDynamicTransition, move.Kind)
	})

	t.Run(`empty stage defaults to applied`, func(t *testing.T) {
		r := newResolver(defaultStages())
		list := r.resolveFor(appAtStage(""))
		move := findAction(t, list, actioncatalog.MoveNextKey)
		require.Equal(t, models.StageScreening, move.TargetStage)
	})

	t.Run(`inactive successor is skipped`, func(t *testing.T) {
		// screening's successor (assessment) deactivated, interview is next
		r := newResolver(withoutSlug(defaultStages(), models.StageAssessment))
		list := r.resolveFor(appAtStage(models.StageScreening))
		move := findAction(t, list, actioncatalog.MoveNextKey)
		require.Equal(t, models.StageInterview, move.TargetStage)
	})

	t.Run(`no active successor omits move-next entirely`, func(t *testing.T) {
		stages := withoutSlug(defaultStages(), models.StageHired)
		stages = withoutSlug(stages, models.StageRejected)
		stages = withoutSlug(stages, models.StageOffer)
		r := newResolver(stages)
		list := r.resolveFor(appAtStage(models.StageInterview))
		require.False(t, hasAction(list, actioncatalog.MoveNextKey))
		// static actions stay available
		require.True(t, hasAction(list, actioncatalog.RejectKey))
	})

	t.Run(`terminal stage omits move-next`, func(t *testing.T) {
		r := newResolver(defaultStages())
		list := r.resolveFor(appAtStage(models.StageHired))
		require.False(t, hasAction(list, actioncatalog.MoveNextKey))
		require.True(t, hasAction(list, actioncatalog.ViewProfileKey))
	})

	t.Run(`current stage missing from the list omits move-next`, func(t *testing.T) {
		r := newResolver(withoutSlug(defaultStages(), models.StageScreening))
		list := r.resolveFor(appAtStage(models.StageScreening))
		require.False(t, hasAction(list, actioncatalog.MoveNextKey))
	})

	t.Run(`unrecognized stage yields no actions`, func(t *testing.T) {
		r := newResolver(defaultStages())
		list := r.resolveFor(appAtStage("background-check"))
		require.Empty(t, list)
	})

	t.Run(`empty stage list yields no actions`, func(t *testing.T) {
		r := newResolver([]dbmodels.PipelineStage{})
		list := r.resolveFor(appAtStage(models.StageApplied))
		require.Empty(t, list)
	})

	t.Run(`output preserves the configured order with move-next in place`, func(t *testing.T) {
		r := newResolver(defaultStages())
		list := r.resolveFor(appAtStage(models.StageApplied))
		keys := make([]string, 0, len(list))
		for _, action := range list {
			keys = append(keys, action.Key)
		}
		require.Equal(t, []string{
			actioncatalog.MoveNextKey,
			actioncatalog.RequestInfoKey,
			actioncatalog.RejectKey,
			actioncatalog.KeepKey,
		}, keys)
	})

	t.Run(`fixed transition carries its static target`, func(t *testing.T) {
		r := newResolver(defaultStages())
		list := r.resolveFor(appAtStage(models.StageOffer))
		hire := findAction(t, list, actioncatalog.HireKey)
		require.Equal(t, models.StageHired, hire.TargetStage)
		require.Equal(t, models.ActionKindTransition, hire.Kind)
	})
}

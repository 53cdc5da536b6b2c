package resolver

import (
	"fmt"

	"peso-backend/db"
	applicationstore "peso-backend/lib/applications/store"
	actioncatalog "peso-backend/lib/pipeline/action-catalog"
	stagecatalog "peso-backend/lib/pipeline/stage-catalog"
	"peso-backend/models"
	pipelineapimodels "peso-backend/models/api/pipeline"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider computes the ordered list of actions currently available for an
// application. Read only; data-absence cases yield an empty or partial list,
// never an error surfaced to the UI.
type Provider interface {
	Resolve(applicationID string) ([]pipelineapimodels.ActionView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		actionCatalog:    actioncatalog.Instance,
		stageCatalog:     stagecatalog.Instance,
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	actionCatalog    actioncatalog.Provider
	stageCatalog     stagecatalog.Provider
}

func (i impl) Resolve(applicationID string) ([]pipelineapimodels.ActionView, error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}
	return i.resolveFor(*app), nil
}

func (i impl) resolveFor(app dbmodels.JobApplication) []pipelineapimodels.ActionView {
	logger := log.WithField("application_id", app.ID).
		WithField("stage", app.GetStage())
	currentSlug := app.GetStage()

	allowedKeys := i.actionCatalog.ActionsAllowedIn(currentSlug)
	if len(allowedKeys) == 0 {
		logger.Warn("no actions configured for stage")
		return []pipelineapimodels.ActionView{}
	}

	stages, err := i.stageCatalog.StagesFor(app.CompanyID())
	if err != nil {
		logger.WithError(err).Warn("failed to load stage list, no actions offered")
		return []pipelineapimodels.ActionView{}
	}
	if len(stages) == 0 {
		logger.Warn("stage list is empty, no actions offered")
		return []pipelineapimodels.ActionView{}
	}

	result := make([]pipelineapimodels.ActionView, 0, len(allowedKeys))
	for _, key := range allowedKeys {
		def, ok := i.actionCatalog.DefinitionOf(key)
		if !ok {
			logger.WithField("action_key", key).Warn("unknown action key in stage config")
			continue
		}
		if def.Kind == models.ActionKindDynamicTransition {
			next, found := nextActiveStage(stages, currentSlug)
			if !found {
				continue
			}
			result = append(result, pipelineapimodels.ActionView{
				Key:         def.Key,
				Label:       fmt.Sprintf("Move to %v", next.Name),
				Kind:        def.Kind,
				TargetStage: next.Slug,
			})
			continue
		}
		result = append(result, pipelineapimodels.ActionView{
			Key:         def.Key,
			Label:       def.Label,
			Kind:        def.Kind,
			TargetStage: def.TargetStage,
			Modal:       def.Modal,
		})
	}
	return result
}

// nextActiveStage locates the current slug in the ordered active stage list
// and returns the nearest following stage. The list excludes inactive stages
// already, so a deactivated immediate successor is skipped naturally. Omitted
// entirely when the current stage is terminal or not in the list.
func nextActiveStage(stages []dbmodels.PipelineStage, currentSlug string) (dbmodels.PipelineStage, bool) {
	for idx, stage := range stages {
		if stage.Slug != currentSlug {
			continue
		}
		if stage.IsTerminal {
			return dbmodels.PipelineStage{}, false
		}
		if idx+1 < len(stages) {
			return stages[idx+1], true
		}
		return dbmodels.PipelineStage{}, false
	}
	return dbmodels.PipelineStage{}, false
}

package stagecatalog

import (
	"context"
	"time"

	"peso-backend/db"
	stagecatalogstore "peso-backend/lib/pipeline/stage-catalog/store"
	"peso-backend/lib/utils/lock"
	pipelineapimodels "peso-backend/models/api/pipeline"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider resolves the ordered stage list for an owner scope: a company's
// private stage set when one exists, the global defaults otherwise.
type Provider interface {
	StagesFor(companyID *string) (list []dbmodels.PipelineStage, err error)
	AllStagesFor(companyID *string) (list []dbmodels.PipelineStage, err error)
	EnsureProvisioned(ctx context.Context, companyID string) error
	UpdateStage(companyID, id string, data pipelineapimodels.StageUpdateData) error
	Reorder(companyID string, slugs []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: stagecatalogstore.NewInstance(db.DB),
	}
}

type impl struct {
	store stagecatalogstore.Provider
}

const provisionWait = 5 * time.Second

// StagesFor returns the active stages in pipeline order for the given scope.
func (i impl) StagesFor(companyID *string) ([]dbmodels.PipelineStage, error) {
	return i.stagesFor(companyID, false)
}

// AllStagesFor includes inactive stages, for admin views.
func (i impl) AllStagesFor(companyID *string) ([]dbmodels.PipelineStage, error) {
	return i.stagesFor(companyID, true)
}

func (i impl) stagesFor(companyID *string, includeInactive bool) ([]dbmodels.PipelineStage, error) {
	if companyID != nil {
		list, err := i.store.List(companyID, includeInactive)
		if err != nil {
			return nil, err
		}
		if len(list) > 0 {
			return list, nil
		}
	}
	return i.store.List(nil, includeInactive)
}

// EnsureProvisioned copies the global defaults into the company scope exactly
// once. The in-process lock keeps concurrent first-use requests from racing,
// the store re-checks existence inside its transaction as the second guard.
func (i impl) EnsureProvisioned(ctx context.Context, companyID string) error {
	if companyID == "" {
		return errors.New("company id is required")
	}
	acquired, err := lock.WithDelay(ctx, provisionKey(companyID), provisionWait, func() error {
		return i.store.ProvisionFromDefaults(companyID)
	})
	if err != nil {
		return err
	}
	if !acquired {
		log.WithField("company_id", companyID).
			Warn("stage provisioning lock not acquired")
		return errors.New("stage provisioning is busy, retry")
	}
	return nil
}

func (i impl) UpdateStage(companyID, id string, data pipelineapimodels.StageUpdateData) error {
	updMap := map[string]interface{}{}
	if data.Name != nil {
		updMap["name"] = *data.Name
	}
	if data.Active != nil {
		updMap["active"] = *data.Active
	}
	return i.store.Update(companyID, id, updMap)
}

func (i impl) Reorder(companyID string, slugs []string) error {
	return i.store.UpdatePositions(companyID, slugs)
}

func provisionKey(companyID string) string {
	return "stage-provision:" + companyID
}

// ExcludeTerminal filters the terminal stages out of an ordered stage list.
// Used for "next stage" computation and funnel views.
func ExcludeTerminal(list []dbmodels.PipelineStage) []dbmodels.PipelineStage {
	result := make([]dbmodels.PipelineStage, 0, len(list))
	for _, stage := range list {
		if stage.IsTerminal {
			continue
		}
		result = append(result, stage)
	}
	return result
}

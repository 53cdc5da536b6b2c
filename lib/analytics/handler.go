package analytics

import (
	"peso-backend/db"
	applicationstore "peso-backend/lib/applications/store"
	stagecatalog "peso-backend/lib/pipeline/stage-catalog"
	pipelineapimodels "peso-backend/models/api/pipeline"
)

// Provider exposes the per-stage funnel counts used by the company
// dashboard. Kept intentionally small, full analytics live elsewhere.
type Provider interface {
	PipelineSummary(companyID string) (list []pipelineapimodels.StageCount, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		stageCatalog:     stagecatalog.Instance,
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	stageCatalog     stagecatalog.Provider
}

// PipelineSummary returns one row per active non-terminal stage plus the
// terminal stages, in pipeline order, with zero counts included so the chart
// renders every stage.
func (i impl) PipelineSummary(companyID string) ([]pipelineapimodels.StageCount, error) {
	stages, err := i.stageCatalog.StagesFor(&companyID)
	if err != nil {
		return nil, err
	}
	counts, err := i.applicationStore.StageCounts(companyID)
	if err != nil {
		return nil, err
	}
	result := make([]pipelineapimodels.StageCount, 0, len(stages))
	for _, stage := range stages {
		result = append(result, pipelineapimodels.StageCount{
			Stage: stage.Slug,
			Name:  stage.Name,
			Count: counts[stage.Slug],
		})
	}
	return result, nil
}

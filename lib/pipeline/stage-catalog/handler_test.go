package stagecatalog

import (
	"context"
	"sync"
	"testing"

	pipelineapimodels "peso-backend/models/api/pipeline"
	dbmodels "peso-backend/models/db"

	"github.com/stretchr/testify/require"
)

func pipelineUpdate(name *string, active *bool) pipelineapimodels.StageUpdateData {
	return pipelineapimodels.StageUpdateData{Name: name, Active: active}
}

type fakeStageStore struct {
	mu             sync.Mutex
	global         []dbmodels.PipelineStage
	company        map[string][]dbmodels.PipelineStage
	provisionCalls int
	copies         int
	updates        []map[string]interface{}
	positions      [][]string
}

func newFakeStageStore() *fakeStageStore {
	return &fakeStageStore{
		global: []dbmodels.PipelineStage{
			{Slug: "applied", Name: "Applied", Position: 1, Active: true, IsDefault: true},
			{Slug: "screening", Name: "Screening", Position: 2, Active: true, IsDefault: true},
			{Slug: "interview", Name: "Interview", Position: 3, Active: false, IsDefault: true},
			{Slug: "hired", Name: "Hired", Position: 4, IsTerminal: true, Active: true, IsDefault: true},
		},
		company: map[string][]dbmodels.PipelineStage{},
	}
}

func (f *fakeStageStore) List(companyID *string, includeInactive bool) ([]dbmodels.PipelineStage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	source := f.global
	if companyID != nil {
		source = f.company[*companyID]
	}
	list := []dbmodels.PipelineStage{}
	for _, stage := range source {
		if !includeInactive && !stage.Active {
			continue
		}
		list = append(list, stage)
	}
	return list, nil
}

func (f *fakeStageStore) GetByID(companyID, id string) (*dbmodels.PipelineStage, error) {
	return nil, nil
}

func (f *fakeStageStore) Update(companyID, id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updMap)
	return nil
}

func (f *fakeStageStore) UpdatePositions(companyID string, slugs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.positions = append(f.positions, slugs)
	return nil
}

func (f *fakeStageStore) ProvisionFromDefaults(companyID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.provisionCalls++
	if len(f.company[companyID]) > 0 {
		return nil
	}
	copied := make([]dbmodels.PipelineStage, len(f.global))
	copy(copied, f.global)
	f.company[companyID] = copied
	f.copies++
	return nil
}

func TestStagesFor(t *testing.T) {
	t.Run(`nil scope serves the global defaults, active only`, func(t *testing.T) {
		store := newFakeStageStore()
		catalog := impl{store: store}
		list, err := catalog.StagesFor(nil)
		require.Nil(t, err)
		require.Len(t, list, 3)
		for _, stage := range list {
			require.True(t, stage.Active)
		}
	})

	t.Run(`unprovisioned company falls back to the defaults`, func(t *testing.T) {
		store := newFakeStageStore()
		catalog := impl{store: store}
		companyID := "company-1"
		list, err := catalog.StagesFor(&companyID)
		require.Nil(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "applied", list[0].Slug)
	})

	t.Run(`provisioned company sees its own set only`, func(t *testing.T) {
		store := newFakeStageStore()
		store.company["company-1"] = []dbmodels.PipelineStage{
			{Slug: "applied", Position: 1, Active: true},
			{Slug: "culture-fit", Position: 2, Active: true},
		}
		catalog := impl{store: store}
		companyID := "company-1"
		list, err := catalog.StagesFor(&companyID)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "culture-fit", list[1].Slug)
	})

	t.Run(`admin listing includes inactive stages`, func(t *testing.T) {
		store := newFakeStageStore()
		catalog := impl{store: store}
		list, err := catalog.AllStagesFor(nil)
		require.Nil(t, err)
		require.Len(t, list, 4)
	})
}

func TestEnsureProvisioned(t *testing.T) {
	t.Run(`empty company id is rejected`, func(t *testing.T) {
		catalog := impl{store: newFakeStageStore()}
		require.NotNil(t, catalog.EnsureProvisioned(context.Background(), ""))
	})

	t.Run(`concurrent first use copies the defaults once`, func(t *testing.T) {
		store := newFakeStageStore()
		catalog := impl{store: store}

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for k := 0; k < len(errs); k++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				errs[idx] = catalog.EnsureProvisioned(context.Background(), "company-race")
			}(k)
		}
		wg.Wait()

		for _, err := range errs {
			require.Nil(t, err)
		}
		require.Equal(t, 1, store.copies, "defaults copied exactly once")
		require.Len(t, store.company["company-race"], 4)
	})

	t.Run(`repeat call after provisioning is a no-op`, func(t *testing.T) {
		store := newFakeStageStore()
		catalog := impl{store: store}
		require.Nil(t, catalog.EnsureProvisioned(context.Background(), "company-2"))
		require.Nil(t, catalog.EnsureProvisioned(context.Background(), "company-2"))
		require.Equal(t, 2, store.provisionCalls)
		require.Equal(t, 1, store.copies)
	})
}

func TestUpdateStage(t *testing.T) {
	t.Run(`only the provided fields reach the store`, func(t *testing.T) {
		store := newFakeStageStore()
		catalog := impl{store: store}
		name := "Phone screening"
		require.Nil(t, catalog.UpdateStage("company-1", "stage-1", pipelineUpdate(&name, nil)))
		require.Len(t, store.updates, 1)
		require.Equal(t, map[string]interface{}{"name": "Phone screening"}, store.updates[0])

		active := false
		require.Nil(t, catalog.UpdateStage("company-1", "stage-1", pipelineUpdate(nil, &active)))
		require.Equal(t, map[string]interface{}{"active": false}, store.updates[1])
	})
}

func TestExcludeTerminal(t *testing.T) {
	store := newFakeStageStore()
	filtered := ExcludeTerminal(store.global)
	require.Len(t, filtered, 3)
	for _, stage := range filtered {
		require.False(t, stage.IsTerminal)
	}
	require.Empty(t, ExcludeTerminal(nil))
}

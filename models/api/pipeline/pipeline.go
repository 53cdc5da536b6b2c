package pipelineapimodels

import (
	"peso-backend/models"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
)

// ActionView is one currently available action for an application, in the
// order configured for its stage.
type ActionView struct {
	Key         string            `json:"key"`
	Label       string            `json:"label"`
	Kind        models.ActionKind `json:"kind"`
	TargetStage string            `json:"target_stage,omitempty"`
	Modal       string            `json:"modal,omitempty"`
}

// ActionRequest is the caller-chosen action submitted for execution.
type ActionRequest struct {
	Key         string                 `json:"key"`
	Kind        models.ActionKind      `json:"kind"`
	TargetStage string                 `json:"target_stage,omitempty"`
	Note        string                 `json:"note,omitempty"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
}

func (r ActionRequest) Validate() error {
	if r.Kind == "" {
		return errors.New("action kind is required")
	}
	if r.Kind != models.ActionKindNoop && r.Key == "" {
		return errors.New("action key is required")
	}
	return nil
}

type ExecuteResult struct {
	Result string `json:"result"`
}

type StageView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Position   int    `json:"position"`
	IsTerminal bool   `json:"is_terminal"`
	Active     bool   `json:"active"`
	IsDefault  bool   `json:"is_default"`
}

func StageConvert(rec dbmodels.PipelineStage) StageView {
	return StageView{
		ID:         rec.ID,
		Name:       rec.Name,
		Slug:       rec.Slug,
		Position:   rec.Position,
		IsTerminal: rec.IsTerminal,
		Active:     rec.Active,
		IsDefault:  rec.IsDefault,
	}
}

type StageUpdateData struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (d StageUpdateData) Validate() error {
	if d.Name == nil && d.Active == nil {
		return errors.New("nothing to update")
	}
	if d.Name != nil && *d.Name == "" {
		return errors.New("stage name cannot be empty")
	}
	return nil
}

type StageReorderData struct {
	Slugs []string `json:"slugs"` // full slug list in the new order
}

func (d StageReorderData) Validate() error {
	if len(d.Slugs) == 0 {
		return errors.New("slug list is empty")
	}
	return nil
}

type StageLogView struct {
	FromStage *string `json:"from_stage"`
	ToStage   string  `json:"to_stage"`
	ChangedBy *string `json:"changed_by"`
	CreatedAt string  `json:"created_at"`
}

func StageLogConvert(rec dbmodels.StageLog) StageLogView {
	return StageLogView{
		FromStage: rec.FromStage,
		ToStage:   rec.ToStage,
		ChangedBy: rec.ChangedBy,
		CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ActionLogView struct {
	ActorID   *string                `json:"actor_id"`
	ActionKey string                 `json:"action_key"`
	Event     string                 `json:"event"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

func ActionLogConvert(rec dbmodels.ActionLog) ActionLogView {
	return ActionLogView{
		ActorID:   rec.ActorID,
		ActionKey: rec.ActionKey,
		Event:     rec.Event,
		Payload:   rec.Payload,
		CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type StageCount struct {
	Stage string `json:"stage"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

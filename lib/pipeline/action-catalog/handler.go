package actioncatalog

import (
	"peso-backend/models"
)

// Provider is a pure lookup over the static pipeline action configuration.
// Loaded once at startup, never mutated afterwards.
type Provider interface {
	ActionsAllowedIn(stageSlug string) []string
	DefinitionOf(actionKey string) (Definition, bool)
	MessageTypeForStage(stageSlug string) (models.MessageType, bool)
}

var Instance Provider

func NewHandler() {
	Instance = newCatalog()
}

// Definition describes one configured pipeline action.
type Definition struct {
	Key         string
	Label       string
	Kind        models.ActionKind
	TargetStage string             // set for fixed transitions
	MessageType models.MessageType // empty when the action sends nothing
	Modal       string             // modal descriptor for the UI, empty when none
}

type catalog struct {
	definitions   map[string]Definition
	stageActions  map[string][]string
	stageMessages map[string]models.MessageType
}

func newCatalog() *catalog {
	c := &catalog{
		definitions:   map[string]Definition{},
		stageActions:  stageActions,
		stageMessages: stageMessages,
	}
	for _, def := range definitions {
		c.definitions[def.Key] = def
	}
	return c
}

// ActionsAllowedIn returns the configured action keys for a stage in UI
// order. Unknown stages yield an empty list, callers must not treat that as
// an error.
func (c *catalog) ActionsAllowedIn(stageSlug string) []string {
	keys, ok := c.stageActions[stageSlug]
	if !ok {
		return []string{}
	}
	result := make([]string, len(keys))
	copy(result, keys)
	return result
}

func (c *catalog) DefinitionOf(actionKey string) (Definition, bool) {
	def, ok := c.definitions[actionKey]
	return def, ok
}

// MessageTypeForStage maps a destination stage to the message template sent
// on arrival. Stages without a template send nothing.
func (c *catalog) MessageTypeForStage(stageSlug string) (models.MessageType, bool) {
	msgType, ok := c.stageMessages[stageSlug]
	return msgType, ok
}

package actioncatalog

import (
	"testing"

	"peso-backend/models"

	"github.com/stretchr/testify/require"
)

func TestActionCatalog(t *testing.T) {
	catalog := newCatalog()

	t.Run(`every configured stage yields its actions in order`, func(t *testing.T) {
		keys := catalog.ActionsAllowedIn(models.StageOffer)
		require.Equal(t, []string{SendOfferKey, HireKey, RejectKey, KeepKey}, keys)
	})

	t.Run(`unknown stage yields an empty list, not an error`, func(t *testing.T) {
		keys := catalog.ActionsAllowedIn("background-check")
		require.NotNil(t, keys)
		require.Empty(t, keys)
	})

	t.Run(`terminal stages only offer viewing`, func(t *testing.T) {
		require.Equal(t, []string{ViewProfileKey}, catalog.ActionsAllowedIn(models.StageHired))
		require.Equal(t, []string{ViewProfileKey}, catalog.ActionsAllowedIn(models.StageRejected))
	})

	t.Run(`mutating a returned list does not corrupt the catalog`, func(t *testing.T) {
		keys := catalog.ActionsAllowedIn(models.StageApplied)
		keys[0] = "tampered"
		require.Equal(t, MoveNextKey, catalog.ActionsAllowedIn(models.StageApplied)[0])
	})

	t.Run(`fixed transitions carry their target stage`, func(t *testing.T) {
		def, ok := catalog.DefinitionOf(RejectKey)
		require.True(t, ok)
		require.Equal(t, models.ActionKindTransition, def.Kind)
		require.Equal(t, models.StageRejected, def.TargetStage)
		require.Equal(t, models.MessageTypeRejected, def.MessageType)

		def, ok = catalog.DefinitionOf(HireKey)
		require.True(t, ok)
		require.Equal(t, models.StageHired, def.TargetStage)
	})

	t.Run(`unknown action key is reported as absent`, func(t *testing.T) {
		_, ok := catalog.DefinitionOf("promote-to-ceo")
		require.False(t, ok)
	})

	t.Run(`destination stages map to their message templates`, func(t *testing.T) {
		expected := map[string]models.MessageType{
			models.StageAssessment: models.MessageTypeExamInstructions,
			models.StageInterview:  models.MessageTypeInterviewInvite,
			models.StageOffer:      models.MessageTypeOfferLetter,
			models.StageHired:      models.MessageTypeHired,
			models.StageRejected:   models.MessageTypeRejected,
		}
		for stage, want := range expected {
			msgType, ok := catalog.MessageTypeForStage(stage)
			require.True(t, ok, stage)
			require.Equal(t, want, msgType, stage)
		}

		_, ok := catalog.MessageTypeForStage(models.StageScreening)
		require.False(t, ok)
	})

	t.Run(`every stage-config key has a definition`, func(t *testing.T) {
		for stage, keys := range stageActions {
			for _, key := range keys {
				_, ok := catalog.DefinitionOf(key)
				require.True(t, ok, "%v/%v", stage, key)
			}
		}
	})
}

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusForStage(t *testing.T) {
	t.Run(`every default stage maps to its fixed status`, func(t *testing.T) {
		expected := map[string]ApplicationStatus{
			StageApplied:    ApplicationStatusApplied,
			StageScreening:  ApplicationStatusScreening,
			StageAssessment: ApplicationStatusScreening,
			StageInterview:  ApplicationStatusScreening,
			StageOffer:      ApplicationStatusOffered,
			StageHired:      ApplicationStatusHired,
			StageRejected:   ApplicationStatusRejected,
		}
		for stage, want := range expected {
			status, ok := StatusForStage(stage)
			require.True(t, ok, stage)
			require.Equal(t, want, status, stage)
		}
	})

	t.Run(`unmapped stage keeps previous status`, func(t *testing.T) {
		_, ok := StatusForStage("background-check")
		require.False(t, ok)
	})
}

package messenger

import (
	"strings"
	"testing"

	"peso-backend/models"

	"github.com/stretchr/testify/require"
)

func TestBuildContent(t *testing.T) {
	t.Run(`canned template interpolates the job title`, func(t *testing.T) {
		subject, content := BuildContent(models.MessageTypeOfferLetter, "Office Clerk", "")
		require.Equal(t, "Job offer", subject)
		require.Contains(t, content, "Office Clerk")
		require.NotContains(t, content, "%v")
	})

	t.Run(`custom note replaces the canned body, subject stays`, func(t *testing.T) {
		subject, content := BuildContent(models.MessageTypeInterviewInvite, "Office Clerk", "See you Monday at 9am.")
		require.Equal(t, "Interview invitation", subject)
		require.Equal(t, "See you Monday at 9am.", content)
	})

	t.Run(`unknown type passes the note through`, func(t *testing.T) {
		subject, content := BuildContent(models.MessageType("custom"), "Office Clerk", "free-form text")
		require.Equal(t, "custom", subject)
		require.Equal(t, "free-form text", content)
	})

	t.Run(`every message type of the pipeline has a template`, func(t *testing.T) {
		for _, msgType := range []models.MessageType{
			models.MessageTypeRequestInfo,
			models.MessageTypeInterviewInvite,
			models.MessageTypeInterviewReschedule,
			models.MessageTypeExamInstructions,
			models.MessageTypeExamReschedule,
			models.MessageTypeOfferLetter,
			models.MessageTypeHired,
			models.MessageTypeRejected,
		} {
			subject, content := BuildContent(msgType, "Office Clerk", "")
			require.NotEmpty(t, subject, string(msgType))
			require.NotEmpty(t, content, string(msgType))
			require.False(t, strings.Contains(content, "%!"), "broken verb in %v", msgType)
		}
	})
}

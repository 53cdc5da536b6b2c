package messenger

import (
	"fmt"

	"peso-backend/models"
)

type templateDef struct {
	subject string
	body    string
}

// canned message bodies per type; %v slots take the job title.
var staticTemplates = map[models.MessageType]templateDef{
	models.MessageTypeRequestInfo: {
		subject: "Additional information needed",
		body:    "We are reviewing your application for %v and need additional information from you. Please check the requirements listed below and reply through the portal.",
	},
	models.MessageTypeInterviewInvite: {
		subject: "Interview invitation",
		body:    "Good news! You are invited to an interview for %v. Details of the schedule are included in this message.",
	},
	models.MessageTypeInterviewReschedule: {
		subject: "Interview rescheduled",
		body:    "Your interview for %v has been rescheduled. Please review the updated schedule below.",
	},
	models.MessageTypeExamInstructions: {
		subject: "Assessment instructions",
		body:    "Your application for %v has moved to the assessment stage. Instructions for the examination are included below.",
	},
	models.MessageTypeExamReschedule: {
		subject: "Assessment rescheduled",
		body:    "Your assessment for %v has been rescheduled. Please review the updated schedule below.",
	},
	models.MessageTypeOfferLetter: {
		subject: "Job offer",
		body:    "Congratulations! We are pleased to extend you an offer for %v. Please review the offer details through the portal.",
	},
	models.MessageTypeHired: {
		subject: "Welcome aboard",
		body:    "Congratulations! Your application for %v has been accepted. We look forward to working with you.",
	},
	models.MessageTypeRejected: {
		subject: "Application update",
		body:    "Thank you for your interest in %v. After careful review we will not be moving forward with your application at this time.",
	},
}

// BuildContent returns the outbound message text for a type: the caller's
// custom note when present, otherwise the canned template. Unknown types get
// the note only.
func BuildContent(msgType models.MessageType, jobTitle, note string) (subject, content string) {
	tpl, ok := staticTemplates[msgType]
	if !ok {
		return string(msgType), note
	}
	if note != "" {
		return tpl.subject, note
	}
	return tpl.subject, fmt.Sprintf(tpl.body, jobTitle)
}

package actioncatalog

import (
	"peso-backend/models"
)

// Well-known action keys. MoveNextKey is resolved dynamically against the
// owner's stage catalog, every other key keeps its static definition.
const (
	MoveNextKey            = "move-next"
	RejectKey              = "reject"
	HireKey                = "hire"
	RequestInfoKey         = "request-info"
	ScheduleInterviewKey   = "schedule-interview"
	RescheduleInterviewKey = "reschedule-interview"
	SendExamKey            = "send-exam-instructions"
	RescheduleExamKey      = "reschedule-exam"
	RecordResultsKey       = "record-test-results"
	SendOfferKey           = "send-offer"
	KeepKey                = "keep"
	ViewProfileKey         = "view-profile"
)

var definitions = []Definition{
	{Key: MoveNextKey, Label: "Move to next stage", Kind: models.ActionKindDynamicTransition},
	{Key: RejectKey, Label: "Reject", Kind: models.ActionKindTransition, TargetStage: models.StageRejected, MessageType: models.MessageTypeRejected, Modal: "reject"},
	{Key: HireKey, Label: "Hire", Kind: models.ActionKindTransition, TargetStage: models.StageHired, MessageType: models.MessageTypeHired, Modal: "hire"},
	{Key: RequestInfoKey, Label: "Request more info", Kind: models.ActionKindAction, MessageType: models.MessageTypeRequestInfo, Modal: "request-info"},
	{Key: ScheduleInterviewKey, Label: "Schedule interview", Kind: models.ActionKindAction, MessageType: models.MessageTypeInterviewInvite, Modal: "schedule-interview"},
	{Key: RescheduleInterviewKey, Label: "Reschedule interview", Kind: models.ActionKindAction, MessageType: models.MessageTypeInterviewReschedule, Modal: "schedule-interview"},
	{Key: SendExamKey, Label: "Send exam instructions", Kind: models.ActionKindAction, MessageType: models.MessageTypeExamInstructions, Modal: "exam"},
	{Key: RescheduleExamKey, Label: "Reschedule exam", Kind: models.ActionKindAction, MessageType: models.MessageTypeExamReschedule, Modal: "exam"},
	{Key: RecordResultsKey, Label: "Record test results", Kind: models.ActionKindAction, Modal: "test-results"},
	{Key: SendOfferKey, Label: "Send offer letter", Kind: models.ActionKindAction, MessageType: models.MessageTypeOfferLetter, Modal: "offer"},
	{Key: KeepKey, Label: "Keep in current stage", Kind: models.ActionKindNoop},
	{Key: ViewProfileKey, Label: "View profile", Kind: models.ActionKindView},
}

// stageActions lists the permitted action keys per stage, in UI order.
var stageActions = map[string][]string{
	models.StageApplied:    {MoveNextKey, RequestInfoKey, RejectKey, KeepKey},
	models.StageScreening:  {MoveNextKey, RequestInfoKey, RejectKey, KeepKey},
	models.StageAssessment: {MoveNextKey, SendExamKey, RescheduleExamKey, RecordResultsKey, RejectKey, KeepKey},
	models.StageInterview:  {MoveNextKey, ScheduleInterviewKey, RescheduleInterviewKey, RejectKey, KeepKey},
	models.StageOffer:      {SendOfferKey, HireKey, RejectKey, KeepKey},
	models.StageHired:      {ViewProfileKey},
	models.StageRejected:   {ViewProfileKey},
}

// stageMessages maps a destination stage to the template sent to the
// applicant when a transition lands there. Stages missing here send nothing.
var stageMessages = map[string]models.MessageType{
	models.StageAssessment: models.MessageTypeExamInstructions,
	models.StageInterview:  models.MessageTypeInterviewInvite,
	models.StageOffer:      models.MessageTypeOfferLetter,
	models.StageHired:      models.MessageTypeHired,
	models.StageRejected:   models.MessageTypeRejected,
}

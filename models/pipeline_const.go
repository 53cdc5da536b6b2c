package models

// Default pipeline stage slugs. Companies may customize their own stage set,
// so code outside this file treats slugs as opaque strings and asks the stage
// catalog for ordering and terminality.
const (
	StageApplied    string = "applied"
	StageScreening  string = "screening"
	StageAssessment string = "assessment"
	StageInterview  string = "interview"
	StageOffer      string = "offer"
	StageHired      string = "hired"
	StageRejected   string = "rejected"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusOffered   ApplicationStatus = "offered"
	ApplicationStatusHired     ApplicationStatus = "hired"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// stageStatusMap is ordered, first match wins.
var stageStatusMap = []struct {
	stage  string
	status ApplicationStatus
}{
	{StageApplied, ApplicationStatusApplied},
	{StageScreening, ApplicationStatusScreening},
	{StageAssessment, ApplicationStatusScreening},
	{StageInterview, ApplicationStatusScreening},
	{StageOffer, ApplicationStatusOffered},
	{StageHired, ApplicationStatusHired},
	{StageRejected, ApplicationStatusRejected},
}

// StatusForStage maps a stage slug to the denormalized application status.
// Unmapped stages return ok=false, callers keep the previous status.
func StatusForStage(stage string) (status ApplicationStatus, ok bool) {
	for _, m := range stageStatusMap {
		if m.stage == stage {
			return m.status, true
		}
	}
	return "", false
}

type ActionKind string

const (
	ActionKindTransition        ActionKind = "transition"
	ActionKindDynamicTransition ActionKind = "dynamic-transition"
	ActionKindAction            ActionKind = "action"
	ActionKindView              ActionKind = "view"
	ActionKindModalOnly         ActionKind = "modal-only"
	ActionKindNoop              ActionKind = "noop"
)

type MessageType string

const (
	MessageTypeRequestInfo         MessageType = "request_info"
	MessageTypeInterviewInvite     MessageType = "interview_invite"
	MessageTypeInterviewReschedule MessageType = "interview_reschedule"
	MessageTypeExamInstructions    MessageType = "exam_instructions"
	MessageTypeExamReschedule      MessageType = "exam_reschedule"
	MessageTypeOfferLetter         MessageType = "offer_letter"
	MessageTypeHired               MessageType = "hired"
	MessageTypeRejected            MessageType = "rejected"
)

type EmploymentStatus string

const (
	EmploymentStatusUnemployed EmploymentStatus = "unemployed"
	EmploymentStatusEmployed   EmploymentStatus = "employed"
)

const SystemActor = "system"

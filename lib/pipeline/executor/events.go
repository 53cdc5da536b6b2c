package executor

import (
	"fmt"
	"strings"

	"peso-backend/config"
	actioncatalog "peso-backend/lib/pipeline/action-catalog"
	pipelineapimodels "peso-backend/models/api/pipeline"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// executeAction records a non-transitioning side-effect action: a shaped
// payload and a human-readable event go to the action log, plus the message
// configured for the action key, if any. The application itself stays
// untouched.
func (i impl) executeAction(actorID string, action pipelineapimodels.ActionRequest, applicationID string, logger *log.Entry) (string, error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application")
		return "", err
	}
	if app == nil {
		return "", errors.New("application not found")
	}

	payload := shapePayload(action.Key, action.Payload)
	event := formatEvent(action.Key, payload)

	var actor *string
	if actorID != "" {
		actor = &actorID
	}
	rec := dbmodels.ActionLog{
		ApplicationID: applicationID,
		ActorID:       actor,
		ActionKey:     action.Key,
		Event:         event,
		Payload:       payload,
	}
	if err = i.actionLogStore.Append(rec); err != nil {
		// the action log is advisory, a failed insert never fails the call
		logger.WithError(err).Error("failed to append action log entry")
	}

	if def, ok := i.actionCatalog.DefinitionOf(action.Key); ok && def.MessageType != "" {
		meta := dbmodels.MessageMeta{
			FromStage: app.GetStage(),
			ToStage:   app.GetStage(),
			Note:      action.Note,
			Link:      applicationLink(app.ID),
		}
		if _, err = i.messenger.Send(app.ID, actor, def.MessageType, action.Note, meta); err != nil {
			logger.WithError(err).Error("failed to send action message")
		}
	}
	return ResultRecorded, nil
}

// shapePayload gives known action keys their dedicated payload shape and
// passes everything else through as-is.
func shapePayload(actionKey string, payload map[string]interface{}) dbmodels.ActionPayload {
	shaped := dbmodels.ActionPayload{}
	for k, v := range payload {
		shaped[k] = v
	}
	if actionKey == actioncatalog.RequestInfoKey {
		if _, ok := shaped["requested"]; !ok {
			shaped["requested"] = []string{}
		}
	}
	return shaped
}

// formatEvent renders the deterministic human-readable event string per
// action key.
func formatEvent(actionKey string, payload dbmodels.ActionPayload) string {
	switch actionKey {
	case actioncatalog.ScheduleInterviewKey:
		return fmt.Sprintf("Interview scheduled for %v at %v (%v)",
			payloadString(payload, "date"), payloadString(payload, "time"), payloadString(payload, "location"))
	case actioncatalog.RescheduleInterviewKey:
		return fmt.Sprintf("Interview rescheduled to %v at %v (%v)",
			payloadString(payload, "date"), payloadString(payload, "time"), payloadString(payload, "location"))
	case actioncatalog.SendExamKey:
		return "Exam instructions sent"
	case actioncatalog.RescheduleExamKey:
		return fmt.Sprintf("Exam rescheduled to %v at %v",
			payloadString(payload, "date"), payloadString(payload, "time"))
	case actioncatalog.RecordResultsKey:
		return fmt.Sprintf("Test results recorded: %v", payloadString(payload, "score"))
	case actioncatalog.RequestInfoKey:
		return fmt.Sprintf("Additional information requested: %v", requestedList(payload))
	case actioncatalog.SendOfferKey:
		return "Offer letter sent"
	default:
		return fmt.Sprintf("Action %v executed", actionKey)
	}
}

func payloadString(payload dbmodels.ActionPayload, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return "-"
	}
	str := fmt.Sprintf("%v", value)
	if str == "" {
		return "-"
	}
	return str
}

func requestedList(payload dbmodels.ActionPayload) string {
	value, ok := payload["requested"]
	if !ok {
		return "-"
	}
	switch items := value.(type) {
	case []string:
		if len(items) == 0 {
			return "-"
		}
		return strings.Join(items, ", ")
	case []interface{}:
		if len(items) == 0 {
			return "-"
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}

func fmtResultMoved(to string) string {
	return fmt.Sprintf(ResultMoved, to)
}

func applicationLink(applicationID string) string {
	base := ""
	if config.Conf != nil {
		base = config.Conf.App.BaseURL
	}
	return fmt.Sprintf("%v/applications/%v", base, applicationID)
}

package executor

import (
	"context"
	"strings"
	"time"

	"peso-backend/db"
	applicationstore "peso-backend/lib/applications/store"
	"peso-backend/lib/messenger"
	"peso-backend/lib/notify"
	offerstore "peso-backend/lib/offers/store"
	actioncatalog "peso-backend/lib/pipeline/action-catalog"
	actionlogstore "peso-backend/lib/pipeline/action-log/store"
	stagelogstore "peso-backend/lib/pipeline/stage-log/store"
	"peso-backend/lib/utils/lock"
	"peso-backend/models"
	pipelineapimodels "peso-backend/models/api/pipeline"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Result strings returned to the caller.
const (
	ResultMoved       = "Stage moved to %v"
	ResultNoChange    = "No stage change"
	ResultRecorded    = "Action recorded"
	ResultKept        = "Kept in current stage"
	ResultUnsupported = "Unsupported action"
)

// Provider executes one resolved pipeline action against an application:
// stage transitions, non-transitioning side-effect actions and noops. The
// stage mutation is the only must-succeed step; audit, messaging and hire
// finalization are guarded so a failure in one never reverts the transition
// or blocks the others.
type Provider interface {
	Execute(ctx context.Context, actorID string, action pipelineapimodels.ActionRequest, applicationID string) (result string, err error)
}

var Instance Provider

func NewHandler(duplicateWindow time.Duration) {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		offerStore:       offerstore.NewInstance(db.DB),
		stageLogStore:    stagelogstore.NewInstance(db.DB),
		actionLogStore:   actionlogstore.NewInstance(db.DB),
		actionCatalog:    actioncatalog.Instance,
		messenger:        messenger.Instance,
		notifier:         notify.Instance,
		duplicateWindow:  duplicateWindow,
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	offerStore       offerstore.Provider
	stageLogStore    stagelogstore.Provider
	actionLogStore   actionlogstore.Provider
	actionCatalog    actioncatalog.Provider
	messenger        messenger.Provider
	notifier         notify.Provider
	duplicateWindow  time.Duration
}

const executeWait = 10 * time.Second

func (i impl) Execute(ctx context.Context, actorID string, action pipelineapimodels.ActionRequest, applicationID string) (string, error) {
	logger := log.WithField("application_id", applicationID).
		WithField("actor_id", actorID).
		WithField("action_key", action.Key).
		WithField("action_kind", action.Kind)

	switch action.Kind {
	case models.ActionKindTransition, models.ActionKindDynamicTransition:
		return i.executeMove(ctx, actorID, action, applicationID, logger)
	case models.ActionKindAction:
		return i.executeAction(actorID, action, applicationID, logger)
	case models.ActionKindNoop:
		return ResultKept, nil
	default:
		logger.Warn("unsupported action kind")
		return ResultUnsupported, nil
	}
}

// executeMove performs a stage transition. Serialized per application by the
// keyed lock: a racing second request observes the already-updated stage and
// ends as a no-op.
func (i impl) executeMove(ctx context.Context, actorID string, action pipelineapimodels.ActionRequest, applicationID string, logger *log.Entry) (result string, err error) {
	acquired, err := lock.WithDelay(ctx, applicationKey(applicationID), executeWait, func() error {
		result, err = i.move(actorID, action, applicationID, logger)
		return err
	})
	if err != nil {
		return "", err
	}
	if !acquired {
		logger.Warn("application lock not acquired")
		return "", errors.New("application is busy, retry")
	}
	return result, nil
}

func (i impl) move(actorID string, action pipelineapimodels.ActionRequest, applicationID string, logger *log.Entry) (string, error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application")
		return "", err
	}
	if app == nil {
		return "", errors.New("application not found")
	}

	from := app.GetStage()
	to := i.resolveTarget(action)
	if to == "" {
		return "", errors.New("transition has no target stage")
	}
	if strings.EqualFold(from, to) {
		return ResultNoChange, nil
	}
	logger = logger.WithField("from_stage", from).WithField("to_stage", to)

	// core mutation: stage, derived status and the archive flag in one write
	updMap := map[string]interface{}{
		"current_stage": to,
	}
	if status, ok := models.StatusForStage(to); ok {
		updMap["status"] = status
	}
	hired := to == models.StageHired
	if hired {
		updMap["status"] = models.ApplicationStatusHired
		updMap["archived_at"] = time.Now()
	}
	if err = i.applicationStore.Update(applicationID, updMap); err != nil {
		logger.WithError(err).Error("failed to write stage transition")
		return "", err
	}

	// everything below is best effort, the transition is already committed
	if hired {
		if err := i.finalizeHire(*app, logger); err != nil {
			logger.WithError(err).Error("hire finalization failed")
		}
	}
	i.auditTransition(applicationID, from, to, actorID, logger)
	i.sendStageMessage(*app, from, to, actorID, action.Note, logger)
	i.notifyApplicant(*app, to, logger)

	return fmtResultMoved(to), nil
}

func (i impl) resolveTarget(action pipelineapimodels.ActionRequest) string {
	if action.TargetStage != "" {
		return action.TargetStage
	}
	if def, ok := i.actionCatalog.DefinitionOf(action.Key); ok {
		return def.TargetStage
	}
	return ""
}

// auditTransition appends a stage-log entry unless the identical (from, to)
// pair landed within the duplicate window. Runs under the application lock,
// so the check and the insert cannot interleave with a concurrent request.
func (i impl) auditTransition(applicationID, from, to, actorID string, logger *log.Entry) {
	dup, err := i.stageLogStore.IsDuplicate(applicationID, &from, to, i.duplicateWindow)
	if err != nil {
		logger.WithError(err).Error("failed to check stage log for duplicates")
		return
	}
	if dup {
		logger.Info("duplicate transition suppressed in stage log")
		return
	}
	var changedBy *string
	if actorID != "" {
		changedBy = &actorID
	}
	if err = i.stageLogStore.Append(applicationID, &from, to, changedBy); err != nil {
		logger.WithError(err).Error("failed to append stage log entry")
	}
}

// sendStageMessage synthesizes the outbound message configured for the
// destination stage. A stage without a template sends nothing.
func (i impl) sendStageMessage(app dbmodels.JobApplication, from, to, actorID, note string, logger *log.Entry) {
	msgType, ok := i.actionCatalog.MessageTypeForStage(to)
	if !ok {
		return
	}
	var senderID *string
	if actorID != "" {
		senderID = &actorID
	}
	meta := dbmodels.MessageMeta{
		FromStage: from,
		ToStage:   to,
		Note:      note,
		Link:      applicationLink(app.ID),
	}
	if _, err := i.messenger.Send(app.ID, senderID, msgType, note, meta); err != nil {
		logger.WithError(err).Error("failed to send stage message")
	}
}

func (i impl) notifyApplicant(app dbmodels.JobApplication, to string, logger *log.Entry) {
	if app.Graduate == nil || app.Graduate.UserID == "" {
		logger.Warn("notification skipped, application has no linked account")
		return
	}
	jobTitle := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
	}
	i.notifier.Notify(app.Graduate.UserID,
		"Application status updated",
		fmtResultMoved(to),
		map[string]interface{}{
			"application_id": app.ID,
			"stage":          to,
			"job_title":      jobTitle,
		})
}

// finalizeHire updates the graduate's profile after a transition into hired.
// Best effort: it runs in its own transaction and a failure here never rolls
// back the committed stage transition.
func (i impl) finalizeHire(app dbmodels.JobApplication, logger *log.Entry) error {
	fresh, err := i.applicationStore.GetByID(app.ID)
	if err != nil {
		return errors.Wrap(err, "failed to reload application")
	}
	if fresh == nil {
		return errors.New("application disappeared during finalization")
	}

	jobTitle := ""
	if fresh.Job != nil {
		jobTitle = fresh.Job.Title
	}
	offer, err := i.offerStore.GetLatestByApplication(fresh.ID)
	if err != nil {
		logger.WithError(err).Warn("failed to load offer, falling back to the posted job title")
	}
	if offer != nil && offer.JobTitle != "" {
		jobTitle = offer.JobTitle
	}
	return i.applicationStore.FinalizeHire(fresh.ID, fresh.GraduateID, jobTitle)
}

func applicationKey(applicationID string) string {
	return "application:" + applicationID
}

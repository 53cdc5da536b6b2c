package messenger

import (
	"peso-backend/db"
	applicationstore "peso-backend/lib/applications/store"
	messagestore "peso-backend/lib/messenger/store"
	"peso-backend/lib/smtp"
	"peso-backend/models"
	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider persists one outbound message per call and mirrors it to email
// when the applicant's account has an address. The receiver is always the
// application's linked graduate account; failing to resolve one is a
// programmer error and surfaces as a real error.
type Provider interface {
	Send(applicationID string, senderID *string, msgType models.MessageType, note string, meta dbmodels.MessageMeta) (id string, err error)
	ListByApplication(applicationID string) (list []dbmodels.Message, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            messagestore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            messagestore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) Send(applicationID string, senderID *string, msgType models.MessageType, note string, meta dbmodels.MessageMeta) (string, error) {
	logger := log.WithField("application_id", applicationID).
		WithField("message_type", msgType)
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("failed to load application for messaging")
		return "", err
	}
	if app == nil {
		return "", errors.New("application not found")
	}
	if app.Graduate == nil || app.Graduate.UserID == "" {
		return "", errors.New("application has no linked applicant account")
	}

	jobTitle := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
	}
	subject, content := BuildContent(msgType, jobTitle, note)

	rec := dbmodels.Message{
		ApplicationID: applicationID,
		SenderID:      senderID,
		ReceiverID:    app.Graduate.UserID,
		MessageType:   msgType,
		Content:       content,
		Meta:          meta,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to persist outbound message")
		return "", err
	}

	// email mirror is best effort, the persisted message is the source of truth
	if app.Graduate.User != nil && app.Graduate.User.Email != "" {
		if err = smtp.Instance.SendEMail(app.Graduate.User.Email, content, subject); err != nil {
			logger.WithError(err).Warn("failed to mirror message to email")
		}
	}
	return id, nil
}

func (i impl) ListByApplication(applicationID string) ([]dbmodels.Message, error) {
	return i.store.ListByApplication(applicationID)
}

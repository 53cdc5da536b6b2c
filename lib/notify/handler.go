package notify

import (
	"peso-backend/db"
	notificationstore "peso-backend/lib/notify/store"
	dbmodels "peso-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider is the fire-and-forget notification channel of the pipeline.
// Notify never returns an error to the caller; delivery problems are logged.
type Provider interface {
	Notify(userID, subject, body string, extra map[string]interface{})
	ListByUser(userID string, unreadOnly bool) (list []dbmodels.Notification, err error)
	MarkRead(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationstore.Provider
}

func (i impl) Notify(userID, subject, body string, extra map[string]interface{}) {
	logger := log.WithField("user_id", userID).
		WithField("subject", subject)
	if userID == "" {
		logger.Warn("notification skipped, no recipient")
		return
	}
	rec := dbmodels.Notification{
		UserID:  userID,
		Subject: subject,
		Body:    body,
		Extra:   extra,
	}
	if _, err := i.store.Create(rec); err != nil {
		logger.WithError(err).Error("failed to persist notification")
	}
}

func (i impl) ListByUser(userID string, unreadOnly bool) ([]dbmodels.Notification, error) {
	return i.store.ListByUser(userID, unreadOnly)
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}

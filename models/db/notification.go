package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Notification is an in-app notification row, written fire-and-forget by the
// notifier. Email delivery, when configured, is a separate channel.
type Notification struct {
	BaseModel
	UserID  string `gorm:"type:varchar(36);index"`
	Subject string `gorm:"type:varchar(255)"`
	Body    string
	Extra   NotificationExtra `gorm:"type:jsonb"`
	ReadAt  *time.Time
}

type NotificationExtra map[string]interface{}

func (e NotificationExtra) Value() (driver.Value, error) {
	valueString, err := json.Marshal(e)
	return string(valueString), err
}

func (e *NotificationExtra) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &e); err != nil {
		return err
	}
	return nil
}

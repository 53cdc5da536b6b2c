package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"peso-backend/models"
)

// Message is a persisted outbound message to an applicant, produced by the
// pipeline when a stage transition or action has a configured template.
type Message struct {
	BaseModel
	ApplicationID string  `gorm:"type:varchar(36);index"`
	SenderID      *string `gorm:"type:varchar(36)"`
	ReceiverID    string  `gorm:"type:varchar(36);index"`
	MessageType   models.MessageType `gorm:"type:varchar(50)"`
	Content       string
	Meta          MessageMeta `gorm:"type:jsonb"`
}

type MessageMeta struct {
	FromStage string `json:"from_stage,omitempty"`
	ToStage   string `json:"to_stage,omitempty"`
	Note      string `json:"note,omitempty"`
	Link      string `json:"link,omitempty"`
}

func (m MessageMeta) Value() (driver.Value, error) {
	valueString, err := json.Marshal(m)
	return string(valueString), err
}

func (m *MessageMeta) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &m); err != nil {
		return err
	}
	return nil
}

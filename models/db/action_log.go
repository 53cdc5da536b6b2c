package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

// ActionLog is one row per executed non-transition pipeline action.
// Append-only.
type ActionLog struct {
	BaseModel
	ApplicationID string  `gorm:"type:varchar(36);index"`
	ActorID       *string `gorm:"type:varchar(36)"`
	ActionKey     string  `gorm:"type:varchar(100)"`
	Event         string
	Payload       ActionPayload `gorm:"type:jsonb"`
}

type ActionPayload map[string]interface{}

func (p ActionPayload) Value() (driver.Value, error) {
	valueString, err := json.Marshal(p)
	return string(valueString), err
}

func (p *ActionPayload) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &p); err != nil {
		return err
	}
	return nil
}

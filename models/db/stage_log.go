package dbmodels

// StageLog is the append-only audit trail of stage changes. One row per
// observed transition; FromStage is nil for the row written on application
// creation. Rows are never updated or deleted.
type StageLog struct {
	BaseModel
	ApplicationID string  `gorm:"type:varchar(36);index"`
	FromStage     *string `gorm:"type:varchar(100)"`
	ToStage       string  `gorm:"type:varchar(100)"`
	ChangedBy     *string `gorm:"type:varchar(36)"`
}

package dbmodels

import "time"

// Offer is the record of an offer extended to an applicant. The most recent
// row per application feeds hire finalization (start date, job title).
type Offer struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	JobTitle      string `gorm:"type:varchar(255)"`
	StartDate     *time.Time
	SalaryOffer   int
}

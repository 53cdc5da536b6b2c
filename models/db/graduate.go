package dbmodels

import (
	"fmt"

	"peso-backend/models"
)

type Graduate struct {
	BaseModel
	UserID           string `gorm:"type:varchar(36);index"`
	User             *User  `gorm:"foreignKey:UserID"`
	FirstName        string `gorm:"type:varchar(255)"`
	LastName         string `gorm:"type:varchar(255)"`
	CurrentJobTitle  string `gorm:"type:varchar(255)"`
	EmploymentStatus models.EmploymentStatus `gorm:"type:varchar(50);default:unemployed"`
}

func (g Graduate) GetFullName() string {
	return fmt.Sprintf("%v %v", g.FirstName, g.LastName)
}

type User struct {
	BaseModel
	Email string          `gorm:"type:varchar(255);uniqueIndex"`
	Role  models.UserRole `gorm:"type:varchar(50)"`
}

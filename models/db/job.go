package dbmodels

type Job struct {
	BaseModel
	CompanyID string   `gorm:"type:varchar(36);index"`
	Company   *Company `gorm:"foreignKey:CompanyID"`
	Title     string   `gorm:"type:varchar(255)"`
	Location  string   `gorm:"type:varchar(255)"`
	Active    bool
}

type Company struct {
	BaseModel
	Name    string `gorm:"type:varchar(255)"`
	Address string
}

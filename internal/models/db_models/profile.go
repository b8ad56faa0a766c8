package db_models

// Profile holds personal and professional details shown on the storefront.
type Profile struct {
	BaseModel
	Name             string `gorm:"size:100;uniqueIndex;not null"`
	JobTitle         string `gorm:"size:100"`
	JobDescription   string `gorm:"type:text"`
	Title            string `gorm:"size:50"`
	Description      string `gorm:"type:text"`
	ProfilePicture   string `gorm:"size:512"`
	SecondaryPicture string `gorm:"size:512"`
}

type Contact struct {
	BaseModel
	Email   string `gorm:"size:255;uniqueIndex;not null"`
	Phone   string `gorm:"size:15"`
	Address string `gorm:"type:text"`
}

package models

type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(255);not null;unique" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

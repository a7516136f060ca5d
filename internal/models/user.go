package models

type User struct {
	Username  string `json:"username" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	AvatarURL string `json:"avatar_url"`
}

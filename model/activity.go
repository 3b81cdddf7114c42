package model

type UserActivity struct {
	DTO
	Username string `gorm:"not null" json:"username"`
	Action   string `gorm:"not null" json:"action"`
}

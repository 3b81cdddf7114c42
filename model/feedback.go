package model

type Feedback struct {
	DTO
	UserId  uint    `gorm:"not null;index" json:"userId"`
	User    *User   `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Rating  int     `gorm:"not null" json:"rating"`
	Comment *string `gorm:"type:text" json:"comment"`
}

type CreateFeedbackInput struct {
	Rating  int     `validate:"required,gte=1,lte=5" json:"rating"`
	Comment *string `json:"comment"`
}

package model

type Cart struct {
	DTO
	UserId uint       `gorm:"uniqueIndex;not null" json:"userId"`
	Items  []CartItem `gorm:"foreignKey:CartId" json:"items"`
}

type CartItem struct {
	DTO
	CartId     uint     `gorm:"not null;index" json:"cartId"`
	MenuItemId uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemId" json:"menuItem"`
	Quantity   int      `gorm:"not null" json:"quantity"`
}

type AddCartItemInput struct {
	MenuItemId uint `validate:"required,gt=0" json:"menuItemId"`
	Quantity   int  `validate:"required,gt=0" json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `validate:"required,gt=0" json:"quantity"`
}

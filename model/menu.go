package model

type MenuItem struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;size:120" json:"slug"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string  `gorm:"not null" json:"category"` // beverages, food, desserts, snacks
	Quantity    int     `gorm:"not null" json:"quantity"`
	Threshold   int     `gorm:"not null" json:"threshold"`
	Available   bool    `gorm:"default:true" json:"available"`
	ImageUrl    *string `json:"imageUrl"`
}

type MenuItems []MenuItem

type CreateMenuItemInput struct {
	Name        string  `validate:"required" json:"name"`
	Description string  `validate:"required" json:"description"`
	Price       float64 `validate:"required,gte=0" json:"price"`
	Category    string  `validate:"required,oneof=beverages food desserts snacks" json:"category"`
	Quantity    int     `validate:"gte=0" json:"quantity"`
	Threshold   int     `validate:"gte=0" json:"threshold"`
	ImageUrl    *string `json:"imageUrl"`
}

type EditMenuItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `validate:"omitempty,gte=0" json:"price"`
	Category    *string  `validate:"omitempty,oneof=beverages food desserts snacks" json:"category"`
	Quantity    *int     `validate:"omitempty,gte=0" json:"quantity"`
	Threshold   *int     `validate:"omitempty,gte=0" json:"threshold"`
	Available   *bool    `json:"available"`
	ImageUrl    *string  `json:"imageUrl"`
}

package model

import "time"

type Promotion struct {
	DTO
	Code               string    `gorm:"unique;not null" json:"code"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	DiscountPercentage float64   `gorm:"type:decimal(5,2);not null" json:"discountPercentage"`
	ExpirationDate     time.Time `gorm:"not null" json:"expirationDate"`
	Active             bool      `gorm:"default:true" json:"active"`
}

type Promotions []Promotion

type CreatePromotionInput struct {
	Code               string    `validate:"required" json:"code"`
	Description        string    `validate:"required" json:"description"`
	DiscountPercentage float64   `validate:"required,gte=0,lte=100" json:"discountPercentage"`
	ExpirationDate     time.Time `validate:"required" json:"expirationDate"`
}

type EditPromotionInput struct {
	Description        *string    `json:"description"`
	DiscountPercentage *float64   `validate:"omitempty,gte=0,lte=100" json:"discountPercentage"`
	ExpirationDate     *time.Time `json:"expirationDate"`
	Active             *bool      `json:"active"`
}

package model

import "time"

type InventoryItem struct {
	DTO
	Item              string    `gorm:"not null" json:"item"`
	Quantity          int       `gorm:"not null" json:"quantity"`
	Unit              string    `gorm:"not null" json:"unit"`
	LowStockThreshold int       `gorm:"not null" json:"lowStockThreshold"`
	LastRestocked     time.Time `json:"lastRestocked"`
	Supplier          *string   `json:"supplier"`
}

type InventoryItems []InventoryItem

type CreateInventoryItemInput struct {
	Item              string  `validate:"required" json:"item"`
	Quantity          int     `validate:"gte=0" json:"quantity"`
	Unit              string  `validate:"required" json:"unit"`
	LowStockThreshold int     `validate:"gte=0" json:"lowStockThreshold"`
	Supplier          *string `json:"supplier"`
}

type EditInventoryItemInput struct {
	Item              *string `json:"item"`
	Quantity          *int    `validate:"omitempty,gte=0" json:"quantity"`
	Unit              *string `json:"unit"`
	LowStockThreshold *int    `validate:"omitempty,gte=0" json:"lowStockThreshold"`
	Supplier          *string `json:"supplier"`
}

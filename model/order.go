package model

type Order struct {
	DTO
	PublicCode      string      `gorm:"unique;size:20" json:"publicCode"`
	CustomerID      uint        `gorm:"not null;index" json:"customerId"`
	Customer        *User       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
	Total           float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status          string      `gorm:"default:'pending'" json:"status"`
	PaymentIntentId string      `json:"paymentIntentId"`
}

type Orders []Order

type OrderItem struct {
	DTO
	OrderId    uint      `gorm:"not null;index" json:"orderId"`
	MenuItemId uint      `json:"menuItemId"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemId" json:"menuItem,omitempty"`
	Name       string    `json:"name"`
	Price      float64   `gorm:"type:decimal(10,2)" json:"price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
}

type OrderItemInput struct {
	MenuItemId uint    `json:"menuItemId"`
	Name       string  `validate:"required" json:"name"`
	Price      float64 `validate:"gte=0" json:"price"`
	Quantity   int     `validate:"required,gt=0" json:"quantity"`
}

type CreateOrderInput struct {
	Items []OrderItemInput `validate:"required,min=1,dive" json:"items"`
	Total float64          `validate:"gte=0" json:"total"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required,oneof=pending preparing ready completed cancelled" json:"status"`
}

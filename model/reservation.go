package model

import "time"

type Reservation struct {
	DTO
	CustomerID      uint      `gorm:"not null;index" json:"customerId"`
	Customer        *User     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Date            time.Time `gorm:"not null" json:"date"`
	Time            string    `gorm:"not null" json:"time"`
	PartySize       int       `gorm:"not null" json:"partySize"`
	Status          string    `gorm:"default:'Pending'" json:"status"`
	SpecialRequests *string   `json:"specialRequests"`
}

type Reservations []Reservation

type CreateReservationInput struct {
	Date            time.Time `validate:"required" json:"date"`
	Time            string    `validate:"required" json:"time"`
	PartySize       int       `validate:"required,gt=0" json:"partySize"`
	SpecialRequests *string   `json:"specialRequests"`
}

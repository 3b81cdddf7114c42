package model

type HelpDeskTicket struct {
	DTO
	CustomerID uint          `gorm:"not null;index" json:"customerId"`
	Customer   *User         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Subject    string        `gorm:"not null" json:"subject"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	Status     string        `gorm:"default:'Open'" json:"status"`
	Replies    []TicketReply `gorm:"foreignKey:TicketId" json:"replies"`
}

type HelpDeskTickets []HelpDeskTicket

type TicketReply struct {
	DTO
	TicketId uint   `gorm:"not null;index" json:"ticketId"`
	Message  string `gorm:"type:text;not null" json:"message"`
	IsStaff  bool   `gorm:"default:false" json:"isStaff"`
	IsAdmin  bool   `gorm:"default:false" json:"isAdmin"`
}

type CreateTicketInput struct {
	Subject string `validate:"required" json:"subject"`
	Message string `validate:"required" json:"message"`
}

type ReplyTicketInput struct {
	Reply string `validate:"required" json:"reply"`
}

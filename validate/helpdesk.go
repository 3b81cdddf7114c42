package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket() fiber.Handler {
	return body[model.CreateTicketInput]("createTicketInput")
}

func ReplyTicket() fiber.Handler {
	return body[model.ReplyTicketInput]("replyTicketInput")
}

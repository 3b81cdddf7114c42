package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return body[model.CreateReservationInput]("createReservationInput")
}

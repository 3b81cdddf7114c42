package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateFeedback() fiber.Handler {
	return body[model.CreateFeedbackInput]("createFeedbackInput")
}

package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func RegisterUser() fiber.Handler {
	return body[model.RegisterUserInput]("registerUserInput")
}

func ChangePassword() fiber.Handler {
	return body[model.ChangePasswordInput]("changePasswordInput")
}

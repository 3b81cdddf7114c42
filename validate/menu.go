package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMenuItem() fiber.Handler {
	return body[model.CreateMenuItemInput]("createMenuItemInput")
}

func EditMenuItem() fiber.Handler {
	return body[model.EditMenuItemInput]("editMenuItemInput")
}

package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateInventoryItem() fiber.Handler {
	return body[model.CreateInventoryItemInput]("createInventoryItemInput")
}

func EditInventoryItem() fiber.Handler {
	return body[model.EditInventoryItemInput]("editInventoryItemInput")
}

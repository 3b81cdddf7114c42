package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func AddCartItem() fiber.Handler {
	return body[model.AddCartItemInput]("addCartItemInput")
}

func UpdateCartItem() fiber.Handler {
	return body[model.UpdateCartItemInput]("updateCartItemInput")
}

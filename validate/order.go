package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return body[model.CreateOrderInput]("createOrderInput")
}

func UpdateOrderStatus() fiber.Handler {
	return body[model.UpdateOrderStatusInput]("updateOrderStatusInput")
}

package validate

import (
	"cafeteria_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreatePromotion() fiber.Handler {
	return body[model.CreatePromotionInput]("createPromotionInput")
}

func EditPromotion() fiber.Handler {
	return body[model.EditPromotionInput]("editPromotionInput")
}

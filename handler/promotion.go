package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPromotions(c *fiber.Ctx) error {
	var promotions model.Promotions
	if err := database.DB.Order("expiration_date").Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching promotions", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

// GetActivePromotions is the customer-facing listing: active and not expired.
func GetActivePromotions(c *fiber.Ctx) error {
	var promotions model.Promotions
	if err := database.DB.
		Where("active = ? AND expiration_date > ?", true, time.Now()).
		Order("expiration_date").
		Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching promotions", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

func CreatePromotion(c *fiber.Ctx) error {
	input, ok := c.Locals("createPromotionInput").(*model.CreatePromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var promotion model.Promotion
	copier.Copy(&promotion, input)
	promotion.Code = strings.ToUpper(promotion.Code)
	promotion.Active = true

	if err := database.DB.Create(&promotion).Error; err != nil {
		if strings.Contains(err.Error(), "code") {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Promotion code already exists", nil, "code")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating promotion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, promotion)
}

func EditPromotion(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	input, ok := c.Locals("editPromotionInput").(*model.EditPromotionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var promotion model.Promotion
	if err := database.DB.First(&promotion, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Promotion not found", err)
	}

	copier.CopyWithOption(&promotion, input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		promotion.Active = *input.Active
	}

	if err := database.DB.Save(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating promotion", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

func DeletePromotion(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.Promotion{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error deleting promotion", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Promotion not found", errors.New("no rows deleted"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Promotion deleted successfully"})
}

// ValidatePromotion checks a code at checkout and returns the discount.
func ValidatePromotion(c *fiber.Ctx) error {
	code := strings.ToUpper(c.Params("code"))

	var promotion model.Promotion
	if err := database.DB.
		Where("code = ? AND active = ? AND expiration_date > ?", code, true, time.Now()).
		First(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Invalid or expired promotion code", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":               promotion.Code,
		"discountPercentage": promotion.DiscountPercentage,
	})
}

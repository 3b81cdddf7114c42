package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateFeedback(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	input, ok := c.Locals("createFeedbackInput").(*model.CreateFeedbackInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	feedback := model.Feedback{
		UserId:  claim.UserId,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := database.DB.Create(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error saving feedback", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, feedback)
}

func GetAllFeedback(c *fiber.Ctx) error {
	var feedback []model.Feedback
	if err := database.DB.
		Preload("User").
		Order("created_at desc").
		Find(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching feedback", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, feedback)
}

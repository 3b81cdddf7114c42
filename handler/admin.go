package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats aggregates the numbers the admin landing page shows.
func GetDashboardStats(c *fiber.Ctx) error {
	daily, err := Analytics.GetDailySales(time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	yesterday, err := Analytics.GetDailySales(time.Now().AddDate(0, 0, -1))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	metrics, err := Analytics.GetCustomerMetrics()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var pendingOrders int64
	if err := database.DB.Model(&model.Order{}).
		Where("status = ?", constants.ORDER_STATUS_PENDING).
		Count(&pendingOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	alerts, err := Analytics.GetInventoryAlerts()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"dailySales":      daily,
		"revenueGrowth":   utils.CalculateGrowth(daily.TotalSales, yesterday.TotalSales),
		"customers":       metrics,
		"pendingOrders":   pendingOrders,
		"inventoryAlerts": alerts,
	})
}

func GetSalesData(c *fiber.Ctx) error {
	points, err := Analytics.GetSalesByDay()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, points)
}

func GetUsers(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	condition := database.DB.Model(&model.User{})

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)

	var users model.Users
	if err := condition.Order("created_at desc").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching users", err)
	}

	response := &model.ResponseCustom{
		Rows:       users,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CreateUser lets the admin add staff accounts directly, already active.
func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("registerUserInput").(*model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Role:      input.Role,
		Status:    constants.USER_STATUS_ACTIVE,
		FirstName: utils.StringPtr(input.FirstName),
		LastName:  utils.StringPtr(input.LastName),
		Address:   utils.StringPtr(input.Address),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username or email already exists", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func DeleteUser(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	claim := helper.GetClaimFromContext(c)

	if uint(id) == claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot delete your own account", errors.New("self delete"))
	}

	result := database.DB.Delete(&model.User{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error deleting user", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", errors.New("no rows deleted"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "User deleted successfully"})
}

func GetPendingRegistrations(c *fiber.Ctx) error {
	var users model.Users
	if err := database.DB.
		Where("status = ?", constants.USER_STATUS_PENDING).
		Order("created_at").
		Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching registrations", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

// ApproveRegistration activates or rejects a pending account.
func ApproveRegistration(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var input model.ApproveRegistrationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
	}

	var user model.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if user.Status != constants.USER_STATUS_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Registration already processed", errors.New("status "+user.Status))
	}

	status := constants.USER_STATUS_REJECTED
	if input.Approved {
		status = constants.USER_STATUS_ACTIVE
	}

	if err := database.DB.Model(&user).Update("status", status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetUserActivity(c *fiber.Ctx) error {
	var activity []model.UserActivity
	if err := database.DB.
		Order("created_at desc").
		Limit(100).
		Find(&activity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching activity", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, activity)
}

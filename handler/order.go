package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/service"
	"cafeteria_manager/utils"
	"encoding/base64"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder is checkout: payment intent plus persisted order in one call.
// The client finishes the card flow with the returned secret.
func CreateOrder(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	input, ok := c.Locals("createOrderInput").(*model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	order, clientSecret, err := Orders.CreateOrder(claim.UserId, *input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Error creating order", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"order":        order,
		"clientSecret": clientSecret,
	})
}

func GetMyOrders(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	var orders model.Orders
	if err := database.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Where("customer_id = ?", claim.UserId).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// GetOrderDetail returns one order by public code, including a pickup QR
// the counter can scan.
func GetOrderDetail(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.CustomerID != claim.UserId && claim.Role == constants.ROLE_CUSTOMER {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Unauthorized", errors.New("order belongs to another customer"))
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("failed to build QR for order %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":  order,
		"qrCode": qrBase64,
	})
}

// GetAllOrders is the staff dashboard listing, newest first and paginated.
func GetAllOrders(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	condition := database.DB.Model(&model.Order{})

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)

	var orders model.Orders
	if err := condition.
		Preload("Items").
		Preload("Customer").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching orders", err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	input, ok := c.Locals("updateOrderStatusInput").(*model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	order, err := Orders.UpdateOrderStatus(uint(id), input.Status)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating order", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CancelOrder is the shortcut the staff UI uses; same path as any other
// status change.
func CancelOrder(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	order, err := Orders.UpdateOrderStatus(uint(id), constants.ORDER_STATUS_CANCELLED)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error cancelling order", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}

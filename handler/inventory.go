package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetInventory(c *fiber.Ctx) error {
	var items model.InventoryItems
	if err := database.DB.Order("item").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching inventory", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// GetLowStockItems lists ingredients at or below their restock threshold.
func GetLowStockItems(c *fiber.Ctx) error {
	var items model.InventoryItems
	if err := database.DB.
		Where("quantity <= low_stock_threshold").
		Order("item").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching inventory", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateInventoryItem(c *fiber.Ctx) error {
	input, ok := c.Locals("createInventoryItemInput").(*model.CreateInventoryItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var item model.InventoryItem
	copier.Copy(&item, input)
	item.LastRestocked = time.Now()

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating inventory item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditInventoryItem(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	input, ok := c.Locals("editInventoryItemInput").(*model.EditInventoryItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var item model.InventoryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Inventory item not found", err)
	}

	// A quantity increase counts as a restock.
	if input.Quantity != nil && *input.Quantity > item.Quantity {
		item.LastRestocked = time.Now()
	}

	copier.CopyWithOption(&item, input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating inventory item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteInventoryItem(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.InventoryItem{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error deleting inventory item", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Inventory item not found", errors.New("no rows deleted"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Inventory item deleted successfully"})
}

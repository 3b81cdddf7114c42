package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getOrCreateCart(userId uint) (*model.Cart, error) {
	var cart model.Cart
	err := database.DB.Where(model.Cart{UserId: userId}).FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func GetCart(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	cart, err := getOrCreateCart(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching cart", err)
	}

	if err := database.DB.Preload("Items").Preload("Items.MenuItem").First(cart, cart.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func AddCartItem(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	input, ok := c.Locals("addCartItemInput").(*model.AddCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var menuItem model.MenuItem
	if err := database.DB.First(&menuItem, input.MenuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	cart, err := getOrCreateCart(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error adding item to cart", err)
	}

	// Same item again just bumps the quantity.
	var item model.CartItem
	err = database.DB.Where("cart_id = ? AND menu_item_id = ?", cart.ID, input.MenuItemId).First(&item).Error
	if err == nil {
		if err := database.DB.Model(&item).Update("quantity", item.Quantity+input.Quantity).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error adding item to cart", err)
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		item = model.CartItem{CartId: cart.ID, MenuItemId: input.MenuItemId, Quantity: input.Quantity}
		if err := database.DB.Create(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error adding item to cart", err)
		}
	} else {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error adding item to cart", err)
	}

	if err := database.DB.Preload("Items").Preload("Items.MenuItem").First(cart, cart.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, cart)
}

func UpdateCartItem(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)
	itemId, _ := c.Locals("inputId").(int)

	input, ok := c.Locals("updateCartItemInput").(*model.UpdateCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	cart, err := getOrCreateCart(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating cart item", err)
	}

	result := database.DB.Model(&model.CartItem{}).
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		Update("quantity", input.Quantity)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Item not found in cart", errors.New("no rows updated"))
	}

	if err := database.DB.Preload("Items").Preload("Items.MenuItem").First(cart, cart.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func RemoveCartItem(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)
	itemId, _ := c.Locals("inputId").(int)

	cart, err := getOrCreateCart(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error removing cart item", err)
	}

	result := database.DB.Where("id = ? AND cart_id = ?", itemId, cart.ID).Delete(&model.CartItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error removing cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Item not found in cart", errors.New("no rows deleted"))
	}

	if err := database.DB.Preload("Items").Preload("Items.MenuItem").First(cart, cart.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func ClearCart(c *fiber.Ctx) error {
	claim := helper.GetClaimFromContext(c)

	cart, err := getOrCreateCart(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error clearing cart", err)
	}

	if err := database.DB.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error clearing cart", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Cart cleared successfully"})
}

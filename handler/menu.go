package handler

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/database"
	"cafeteria_manager/helper"
	"cafeteria_manager/model"
	"cafeteria_manager/utils"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetMenu is the public browse endpoint: available items only, optional
// category filter.
func GetMenu(c *fiber.Ctx) error {
	query := database.DB.Where("available = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items model.MenuItems
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching menu", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// GetMenuItems is the staff view: everything, including unavailable items.
func GetMenuItems(c *fiber.Ctx) error {
	var items model.MenuItems
	if err := database.DB.Order("category, name").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching menu items", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("createMenuItemInput").(*model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var newItem model.MenuItem
	copier.Copy(&newItem, input)
	newItem.Slug = helper.GenerateUniqueMenuItemSlug(database.DB, input.Name)
	newItem.Available = true

	if err := database.DB.Create(&newItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error creating menu item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newItem)
}

func EditMenuItem(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	input, ok := c.Locals("editMenuItemInput").(*model.EditMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&item, input, copier.Option{IgnoreEmpty: true})
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.Name != nil && *input.Name != "" {
		item.Slug = helper.GenerateUniqueMenuItemSlug(database.DB, *input.Name)
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating menu item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.MenuItem{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error deleting menu item", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", errors.New("no rows deleted"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Menu item deleted successfully"})
}

// DeleteMenuItems removes several items in one call, for the staff
// bulk-edit view.
func DeleteMenuItems(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing input"))
	}

	result := database.DB.Delete(&model.MenuItem{}, input.IDs)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error deleting menu items", result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// UploadMenuItemPhoto pushes the uploaded image to Cloudinary and stores
// the returned URL on the item.
func UploadMenuItemPhoto(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing photo file", err)
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read photo file", err)
	}
	defer reader.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "menu",
		PublicID:     fmt.Sprintf("menu_%d_%d", item.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Photo upload failed", err)
	}

	if err := database.DB.Model(&item).Update("image_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": result.SecureURL})
}

// GenerateSignature signs direct-upload parameters so the SPA can push
// images to Cloudinary without routing bytes through this server.
func GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid params", err)
	}

	timestamp := time.Now().Unix()

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = fmt.Sprintf("%d", timestamp)

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

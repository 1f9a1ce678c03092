package cropController

import (
	"farmsync/config"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	"farmsync/utils"
	cropValidator "farmsync/validators/crop"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListCrops returns published crops only, for every role. Unpublished crops
// are never listed; they are still reachable by id via GetCrop.
func ListCrops(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 100)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Crop{}).Where("published = ?", true).Count(&total)

	var crops []models.Crop
	if err := db.Where("published = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&crops).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to fetch crops!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crops fetched!", fiber.Map{
		"crops": crops,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCrop returns a crop by id for any authenticated caller, published or not.
func GetCrop(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid crop id!")
	}

	var crop models.Crop
	if err := database.Database.Db.Where("id = ?", id).First(&crop).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Crop not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crop fetched!", crop)
}

// CreateCrop creates a listing owned by the calling farmer.
func CreateCrop(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reqData, ok := c.Locals("validatedCreateCrop").(*cropValidator.CreateCropRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	crop := models.Crop{
		Name:        reqData.Name,
		Description: reqData.Description,
		Quantity:    reqData.Quantity,
		Price:       reqData.Price,
		Unit:        reqData.Unit,
		Category:    reqData.Category,
		Published:   reqData.Published,
		FarmerID:    user.ID,
	}

	if err := database.Database.Db.Create(&crop).Error; err != nil {
		log.Printf("Error saving crop to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to create crop!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Crop created successfully!", crop)
}

// UpdateCrop applies a partial update. Only the owning farmer may update,
// and only fields present in the payload change.
func UpdateCrop(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid crop id!")
	}

	reqData, ok := c.Locals("validatedUpdateCrop").(*cropValidator.UpdateCropRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	var crop models.Crop
	if err := db.Where("id = ?", id).First(&crop).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Crop not found!")
	}

	if crop.FarmerID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You can only update your own crops!")
	}

	if reqData.Name != nil {
		crop.Name = *reqData.Name
	}
	if reqData.Description != nil {
		crop.Description = *reqData.Description
	}
	if reqData.Quantity != nil {
		crop.Quantity = *reqData.Quantity
	}
	if reqData.Price != nil {
		crop.Price = *reqData.Price
	}
	if reqData.Unit != nil {
		crop.Unit = *reqData.Unit
	}
	if reqData.Category != nil {
		crop.Category = *reqData.Category
	}
	if reqData.Published != nil {
		crop.Published = *reqData.Published
	}

	if err := db.Save(&crop).Error; err != nil {
		log.Printf("Error updating crop: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to update crop!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crop updated successfully!", crop)
}

// UploadCropPhoto stores the crop photo keyed by crop id; re-uploading
// replaces the previous photo instead of accumulating files.
func UploadCropPhoto(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid crop id!")
	}

	db := database.Database.Db

	var crop models.Crop
	if err := db.Where("id = ?", id).First(&crop).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Crop not found!")
	}

	if crop.FarmerID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You can only upload photos for your own crops!")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Photo file is required!")
	}

	photoPath, err := utils.SaveCropPhoto(file, config.AppConfig.UploadDir, crop.ID)
	if err != nil {
		log.Printf("Error saving crop photo: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to save photo!")
	}

	crop.Photo = photoPath
	if err := db.Save(&crop).Error; err != nil {
		log.Printf("Error updating crop photo: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to update crop!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Photo uploaded successfully!", fiber.Map{
		"photoPath": crop.Photo,
	})
}

package reviewController

import (
	"errors"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	reviewValidator "farmsync/validators/review"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	errOrderNotCompleted = errors.New("order is not completed")
	errDuplicateReview   = errors.New("review already exists for this order")
	errNotOrderBuyer     = errors.New("caller did not place this order")
)

// CreateReview lets the buyer of a completed order rate it, once. The
// uniqueness check and the insert run inside one transaction, with a unique
// index on order_id as the backstop, so concurrent attempts can never
// produce two reviews for the same order.
func CreateReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reqData, ok := c.Locals("validatedCreateReview").(*reviewValidator.CreateReviewRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	var order models.Order
	if err := db.Preload("Crop").Where("id = ?", reqData.OrderID).First(&order).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Order not found!")
	}
	if order.Crop == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Crop not found!")
	}

	review := models.Review{
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
		BuyerID:  user.ID,
		FarmerID: order.Crop.FarmerID,
		OrderID:  order.ID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if order.BuyerID != user.ID {
			return errNotOrderBuyer
		}
		if order.Status != models.OrderCompleted {
			return errOrderNotCompleted
		}
		var existing models.Review
		if err := tx.Where("order_id = ?", order.ID).First(&existing).Error; err == nil {
			return errDuplicateReview
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errNotOrderBuyer):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You can only review your own orders!")
		case errors.Is(err, errOrderNotCompleted):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindInvalidState, "Only completed orders can be reviewed!")
		case errors.Is(err, errDuplicateReview), errors.Is(err, gorm.ErrDuplicatedKey):
			// The unique index on order_id catches the race the
			// check-then-insert cannot see.
			return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "A review already exists for this order!")
		default:
			log.Printf("Error saving review: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to create review!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", review)
}

// ListReviews scopes visibility by role: admins see all, farmers see reviews
// naming them, buyers see their own.
func ListReviews(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

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

	query := db.Model(&models.Review{})
	switch user.Role {
	case models.RoleAdmin:
		// no filter
	case models.RoleFarmer:
		query = query.Where("farmer_id = ?", user.ID)
	default: // buyer
		query = query.Where("buyer_id = ?", user.ID)
	}

	var total int64
	query.Count(&total)

	var reviews []models.Review
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to fetch reviews!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetReview returns a single review to the admin, the named farmer or the
// authoring buyer.
func GetReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid review id!")
	}

	var review models.Review
	if err := database.Database.Db.Where("id = ?", id).First(&review).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Review not found!")
	}

	allowed := user.Role == models.RoleAdmin ||
		(user.Role == models.RoleFarmer && review.FarmerID == user.ID) ||
		(user.Role == models.RoleBuyer && review.BuyerID == user.ID)
	if !allowed {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You do not have permission to access this review!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched!", review)
}

// UpdateReview applies a partial update. Only the authoring buyer may edit.
func UpdateReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid review id!")
	}

	reqData, ok := c.Locals("validatedUpdateReview").(*reviewValidator.UpdateReviewRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ?", id).First(&review).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Review not found!")
	}

	if review.BuyerID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You can only update your own reviews!")
	}

	if reqData.Rating != nil {
		review.Rating = *reqData.Rating
	}
	if reqData.Comment != nil {
		review.Comment = *reqData.Comment
	}

	if err := db.Save(&review).Error; err != nil {
		log.Printf("Error updating review: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to update review!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

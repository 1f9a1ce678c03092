package orderController

import (
	"errors"
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"
	"farmsync/utils"
	orderValidator "farmsync/validators/order"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	errOrderNotPending       = errors.New("order is not pending")
	errInsufficientInventory = errors.New("not enough quantity available")
)

// CreateOrder places a purchase request against a crop. Availability is
// checked but nothing is reserved; inventory only moves when the farmer
// accepts. The total price is frozen here and never recomputed.
func CreateOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reqData, ok := c.Locals("validatedCreateOrder").(*orderValidator.CreateOrderRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	db := database.Database.Db

	var crop models.Crop
	if err := db.Where("id = ?", reqData.CropID).First(&crop).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Crop not found!")
	}

	if !crop.Published {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindInvalidState, "Crop is not available in the marketplace!")
	}

	if crop.Quantity < reqData.Quantity {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindInsufficientInventory, "Not enough quantity available!")
	}

	order := models.Order{
		Quantity:   reqData.Quantity,
		TotalPrice: reqData.Quantity * crop.Price,
		Status:     models.OrderPending,
		BuyerID:    user.ID,
		CropID:     crop.ID,
	}

	if err := db.Create(&order).Error; err != nil {
		log.Printf("Error saving order to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to create order!")
	}

	// Notify the farmer
	var farmer models.User
	if err := db.Where("id = ?", crop.FarmerID).First(&farmer).Error; err == nil {
		utils.SendOrderPlacedEmail(farmer.Email, farmer.Name, crop.Name, order.Quantity, crop.Unit)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// ListOrders scopes visibility by role at query time: admins see all, farmers
// see orders against their own crops, buyers see orders they placed.
func ListOrders(c *fiber.Ctx) error {
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

	query := db.Model(&models.Order{})
	switch user.Role {
	case models.RoleAdmin:
		// no filter
	case models.RoleFarmer:
		query = query.Joins("JOIN crops ON crops.id = orders.crop_id").Where("crops.farmer_id = ?", user.ID)
	default: // buyer
		query = query.Where("orders.buyer_id = ?", user.ID)
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.
		Select("orders.*").
		Preload("Crop").
		Order("orders.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to fetch orders!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetOrder returns a single order to the admin, the owning farmer or the
// placing buyer. Anyone else gets 403, not 404, since the order exists.
func GetOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid order id!")
	}

	db := database.Database.Db

	var order models.Order
	if err := db.Preload("Crop").Where("id = ?", id).First(&order).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Order not found!")
	}

	if !canAccessOrder(user, &order) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You do not have permission to access this order!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched!", order)
}

func canAccessOrder(user *models.User, order *models.Order) bool {
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleFarmer:
		return order.Crop != nil && order.Crop.FarmerID == user.ID
	default: // buyer
		return order.BuyerID == user.ID
	}
}

// UpdateOrderStatus drives the order state machine. Farmers who own the crop
// accept or reject pending orders and may complete accepted ones; buyers may
// cancel a pending order (to rejected) or confirm receipt (to completed).
// The accept path re-checks inventory and decrements it in one transaction
// so the status flip and the decrement are always observed together.
func UpdateOrderStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid order id!")
	}

	reqData, ok := c.Locals("validatedUpdateOrder").(*orderValidator.UpdateOrderRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}
	target := models.OrderStatus(reqData.Status)

	db := database.Database.Db

	var order models.Order
	if err := db.Preload("Crop").Where("id = ?", id).First(&order).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Order not found!")
	}

	isOwningFarmer := user.Role == models.RoleFarmer && order.Crop != nil && order.Crop.FarmerID == user.ID
	isPlacingBuyer := user.Role == models.RoleBuyer && order.BuyerID == user.ID
	if !isOwningFarmer && !isPlacingBuyer {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You do not have permission to update this order!")
	}

	// Buyers never drive acceptance; that is the farmer's call.
	if isPlacingBuyer && target == models.OrderAccepted {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "Only the farmer can accept an order!")
	}

	if order.Status.Terminal() {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Order has already been finalized!")
	}
	if !order.Status.CanTransition(target) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindInvalidState, "Invalid status transition!")
	}

	if target == models.OrderAccepted {
		if err := acceptOrder(db, &order); err != nil {
			switch {
			case errors.Is(err, errInsufficientInventory):
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindInsufficientInventory, "Not enough quantity available!")
			case errors.Is(err, errOrderNotPending):
				return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Order has already been processed!")
			default:
				log.Printf("Error accepting order %d: %v", order.ID, err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to update order!")
			}
		}
	} else {
		// Guard on the previously read status so a concurrent transition
		// loses instead of silently overwriting.
		result := db.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Update("status", target)
		if result.Error != nil {
			log.Printf("Error updating order %d: %v", order.ID, result.Error)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindUnavailable, "Failed to update order!")
		}
		if result.RowsAffected == 0 {
			return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindConflict, "Order has already been processed!")
		}
		order.Status = target
	}

	// Notify the buyer
	var buyer models.User
	if err := db.Where("id = ?", order.BuyerID).First(&buyer).Error; err == nil && order.Crop != nil {
		utils.SendOrderStatusEmail(buyer.Email, buyer.Name, order.Crop.Name, string(order.Status))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated successfully!", order)
}

// acceptOrder flips a pending order to accepted and decrements the crop's
// inventory atomically. Both writes carry their own guard in the WHERE
// clause, so a concurrent accept or an inventory shortfall rolls the whole
// transaction back: quantity can never go negative and no order is ever
// decremented twice.
func acceptOrder(db *gorm.DB, order *models.Order) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		flipped := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, models.OrderPending).
			Update("status", models.OrderAccepted)
		if flipped.Error != nil {
			return flipped.Error
		}
		if flipped.RowsAffected == 0 {
			return errOrderNotPending
		}

		decremented := tx.Model(&models.Crop{}).
			Where("id = ? AND quantity >= ?", order.CropID, order.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", order.Quantity))
		if decremented.Error != nil {
			return decremented.Error
		}
		if decremented.RowsAffected == 0 {
			return errInsufficientInventory
		}

		return nil
	})
	if err != nil {
		return err
	}

	order.Status = models.OrderAccepted
	if order.Crop != nil {
		order.Crop.Quantity -= order.Quantity
	}
	return nil
}

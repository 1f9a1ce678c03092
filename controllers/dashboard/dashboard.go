package dashboardController

import (
	"farmsync/database"
	"farmsync/middleware"
	"farmsync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

const recentLimit = 5

// GetStats returns role-scoped dashboard counts and recent activity.
func GetStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	db := database.Database.Db
	monthStart := now.BeginningOfMonth()

	stats := fiber.Map{}

	switch user.Role {
	case models.RoleAdmin:
		var totalUsers, totalFarmers, totalBuyers, totalCrops, totalOrders, totalReviews, monthOrders int64
		db.Model(&models.User{}).Count(&totalUsers)
		db.Model(&models.User{}).Where("role = ?", models.RoleFarmer).Count(&totalFarmers)
		db.Model(&models.User{}).Where("role = ?", models.RoleBuyer).Count(&totalBuyers)
		db.Model(&models.Crop{}).Count(&totalCrops)
		db.Model(&models.Order{}).Count(&totalOrders)
		db.Model(&models.Review{}).Count(&totalReviews)
		db.Model(&models.Order{}).Where("created_at >= ?", monthStart).Count(&monthOrders)

		var recentOrders []models.Order
		db.Order("created_at DESC").Limit(recentLimit).Find(&recentOrders)
		var recentReviews []models.Review
		db.Order("created_at DESC").Limit(recentLimit).Find(&recentReviews)

		stats = fiber.Map{
			"totalUsers":      totalUsers,
			"totalFarmers":    totalFarmers,
			"totalBuyers":     totalBuyers,
			"totalCrops":      totalCrops,
			"totalOrders":     totalOrders,
			"totalReviews":    totalReviews,
			"ordersThisMonth": monthOrders,
			"recentOrders":    recentOrders,
			"recentReviews":   recentReviews,
		}

	case models.RoleFarmer:
		var totalCrops, totalOrders, totalReviews, monthOrders int64
		db.Model(&models.Crop{}).Where("farmer_id = ?", user.ID).Count(&totalCrops)
		farmerOrders := db.Model(&models.Order{}).
			Joins("JOIN crops ON crops.id = orders.crop_id").
			Where("crops.farmer_id = ?", user.ID)
		farmerOrders.Count(&totalOrders)
		db.Model(&models.Order{}).
			Joins("JOIN crops ON crops.id = orders.crop_id").
			Where("crops.farmer_id = ? AND orders.created_at >= ?", user.ID, monthStart).
			Count(&monthOrders)
		db.Model(&models.Review{}).Where("farmer_id = ?", user.ID).Count(&totalReviews)

		var recentOrders []models.Order
		db.Model(&models.Order{}).
			Select("orders.*").
			Joins("JOIN crops ON crops.id = orders.crop_id").
			Where("crops.farmer_id = ?", user.ID).
			Order("orders.created_at DESC").
			Limit(recentLimit).
			Find(&recentOrders)
		var recentReviews []models.Review
		db.Where("farmer_id = ?", user.ID).Order("created_at DESC").Limit(recentLimit).Find(&recentReviews)

		stats = fiber.Map{
			"totalCrops":      totalCrops,
			"totalOrders":     totalOrders,
			"totalReviews":    totalReviews,
			"ordersThisMonth": monthOrders,
			"recentOrders":    recentOrders,
			"recentReviews":   recentReviews,
		}

	default: // buyer
		var totalOrders, totalReviews, monthOrders int64
		db.Model(&models.Order{}).Where("buyer_id = ?", user.ID).Count(&totalOrders)
		db.Model(&models.Order{}).Where("buyer_id = ? AND created_at >= ?", user.ID, monthStart).Count(&monthOrders)
		db.Model(&models.Review{}).Where("buyer_id = ?", user.ID).Count(&totalReviews)

		var recentOrders []models.Order
		db.Where("buyer_id = ?", user.ID).Order("created_at DESC").Limit(recentLimit).Find(&recentOrders)
		var recentReviews []models.Review
		db.Where("buyer_id = ?", user.ID).Order("created_at DESC").Limit(recentLimit).Find(&recentReviews)

		stats = fiber.Map{
			"totalOrders":     totalOrders,
			"totalReviews":    totalReviews,
			"ordersThisMonth": monthOrders,
			"recentOrders":    recentOrders,
			"recentReviews":   recentReviews,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched!", stats)
}

type statusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type categoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// GetAnalytics returns role-scoped aggregations: orders by status, average
// rating, revenue (or spend for buyers) and crops by category.
func GetAnalytics(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	db := database.Database.Db

	analytics := fiber.Map{}

	switch user.Role {
	case models.RoleAdmin:
		var byStatus []statusCount
		db.Model(&models.Order{}).
			Select("status, count(*) as count").
			Group("status").
			Scan(&byStatus)

		var avgRating *float64
		db.Model(&models.Review{}).Select("avg(rating)").Scan(&avgRating)

		var totalRevenue *float64
		db.Model(&models.Order{}).Select("sum(total_price)").Scan(&totalRevenue)

		var byCategory []categoryCount
		db.Model(&models.Crop{}).
			Select("category, count(*) as count").
			Group("category").
			Scan(&byCategory)

		analytics = fiber.Map{
			"ordersByStatus":  byStatus,
			"averageRating":   avgRating,
			"totalRevenue":    totalRevenue,
			"cropsByCategory": byCategory,
		}

	case models.RoleFarmer:
		var byStatus []statusCount
		db.Model(&models.Order{}).
			Select("orders.status, count(*) as count").
			Joins("JOIN crops ON crops.id = orders.crop_id").
			Where("crops.farmer_id = ?", user.ID).
			Group("orders.status").
			Scan(&byStatus)

		var avgRating *float64
		db.Model(&models.Review{}).Where("farmer_id = ?", user.ID).Select("avg(rating)").Scan(&avgRating)

		var totalRevenue *float64
		db.Model(&models.Order{}).
			Select("sum(orders.total_price)").
			Joins("JOIN crops ON crops.id = orders.crop_id").
			Where("crops.farmer_id = ?", user.ID).
			Scan(&totalRevenue)

		var byCategory []categoryCount
		db.Model(&models.Crop{}).
			Select("category, count(*) as count").
			Where("farmer_id = ?", user.ID).
			Group("category").
			Scan(&byCategory)

		analytics = fiber.Map{
			"ordersByStatus":  byStatus,
			"averageRating":   avgRating,
			"totalRevenue":    totalRevenue,
			"cropsByCategory": byCategory,
		}

	default: // buyer
		var byStatus []statusCount
		db.Model(&models.Order{}).
			Select("status, count(*) as count").
			Where("buyer_id = ?", user.ID).
			Group("status").
			Scan(&byStatus)

		var avgRating *float64
		db.Model(&models.Review{}).Where("buyer_id = ?", user.ID).Select("avg(rating)").Scan(&avgRating)

		var totalSpent *float64
		db.Model(&models.Order{}).Where("buyer_id = ?", user.ID).Select("sum(total_price)").Scan(&totalSpent)

		analytics = fiber.Map{
			"ordersByStatus": byStatus,
			"averageRating":  avgRating,
			"totalSpent":     totalSpent,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched!", analytics)
}

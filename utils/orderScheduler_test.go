package utils_test

import (
	"testing"
	"time"

	"farmsync/database"
	"farmsync/models"
	"farmsync/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus, age time.Duration) *models.Order {
	t.Helper()
	order := models.Order{
		Quantity:   1,
		TotalPrice: 1,
		Status:     status,
		BuyerID:    1,
		CropID:     1,
	}
	order.CreatedAt = time.Now().Add(-age)
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func TestExpireStaleOrders(t *testing.T) {
	db := database.ConnectTestDb()

	stale := seedOrder(t, db, models.OrderPending, utils.StalePendingAge+time.Hour)
	recent := seedOrder(t, db, models.OrderPending, time.Hour)
	accepted := seedOrder(t, db, models.OrderAccepted, utils.StalePendingAge+time.Hour)

	utils.ExpireStaleOrders()

	var fresh models.Order
	require.NoError(t, db.First(&fresh, stale.ID).Error)
	require.Equal(t, models.OrderRejected, fresh.Status)

	fresh = models.Order{}
	require.NoError(t, db.First(&fresh, recent.ID).Error)
	require.Equal(t, models.OrderPending, fresh.Status)

	// Only pending orders expire; accepted ones keep their inventory claim
	fresh = models.Order{}
	require.NoError(t, db.First(&fresh, accepted.ID).Error)
	require.Equal(t, models.OrderAccepted, fresh.Status)
}

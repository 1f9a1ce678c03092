package utils

import (
	"farmsync/database"
	"farmsync/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StalePendingAge is how long an order may sit in pending before the daily
// job rejects it.
const StalePendingAge = 7 * 24 * time.Hour

// InitializeOrderScheduler sets up the stale order expiry scheduler
func InitializeOrderScheduler() {
	log.Println("[ORDER-SCHEDULER] Initializing order scheduler...")

	c := cron.New()

	// Run daily at 6 AM to reject stale pending orders
	c.AddFunc("0 6 * * *", func() {
		log.Println("[ORDER-SCHEDULER] Running daily stale order check...")
		ExpireStaleOrders()
	})

	c.Start()
	log.Println("[ORDER-SCHEDULER] Order scheduler started - runs daily at 6 AM")
}

// ExpireStaleOrders rejects pending orders older than StalePendingAge.
// pending -> rejected never touches crop inventory.
func ExpireStaleOrders() {
	db := database.Database.Db
	cutoff := time.Now().Add(-StalePendingAge)

	result := db.Model(&models.Order{}).
		Where("status = ? AND created_at < ?", models.OrderPending, cutoff).
		Update("status", models.OrderRejected)

	if result.Error != nil {
		log.Printf("[ORDER-SCHEDULER] Error expiring stale orders: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[ORDER-SCHEDULER] Rejected %d stale pending orders", result.RowsAffected)
	}
}

package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

// RetentionSweeper deletes per-day records older than Days. Day keys sort
// lexicographically, so a plain < comparison on the date column is enough.
type RetentionSweeper struct {
	DB       *gorm.DB
	Days     int
	Interval time.Duration
	StopChan chan struct{}
}

func NewRetentionSweeper(db *gorm.DB, days int) *RetentionSweeper {
	return &RetentionSweeper{
		DB:       db,
		Days:     days,
		Interval: 24 * time.Hour,
		StopChan: make(chan struct{}),
	}
}

func (rs *RetentionSweeper) Start() {
	go func() {
		ticker := time.NewTicker(rs.Interval)
		defer ticker.Stop()

		rs.Sweep()
		for {
			select {
			case <-ticker.C:
				rs.Sweep()
			case <-rs.StopChan:
				return
			}
		}
	}()
}

func (rs *RetentionSweeper) Stop() {
	close(rs.StopChan)
}

func (rs *RetentionSweeper) Sweep() {
	threshold := utils.DayKeyAt(time.Now().AddDate(0, 0, -rs.Days))

	// Items first: their orders are about to go.
	sub := rs.DB.Model(&models.Order{}).Select("id").Where("order_date < ?", threshold)
	rs.deleteWhere("order items", rs.DB.Where("order_id IN (?)", sub).Delete(&models.OrderItem{}))
	rs.deleteWhere("orders", rs.DB.Where("order_date < ?", threshold).Delete(&models.Order{}))
	rs.deleteWhere("cutoffs", rs.DB.Where("cutoff_date < ?", threshold).Delete(&models.Cutoff{}))
	rs.deleteWhere("daily menus", rs.DB.Where("menu_date < ?", threshold).Delete(&models.DailyMenu{}))
	rs.deleteWhere("order statuses", rs.DB.Where("status_date < ?", threshold).Delete(&models.OrderStatus{}))
}

func (rs *RetentionSweeper) deleteWhere(what string, result *gorm.DB) {
	if result.Error != nil {
		utils.ErrorLogger.Printf("Error cleaning up old %s: %v", what, result.Error)
		return
	}
	if result.RowsAffected > 0 {
		utils.InfoLogger.Printf("Deleted %d old %s", result.RowsAffected, what)
	}
}

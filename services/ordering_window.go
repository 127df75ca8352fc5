package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

// OrderingWindow decides whether ordering may open or close for a day.
// SetStatus is a read-modify-write, so concurrent calls are serialized; the
// auto-close write deliberately is not (last-writer-wins, see AutoCloser).
type OrderingWindow struct {
	DB         *gorm.DB
	AutoCloser *AutoCloser

	mu sync.Mutex
}

func NewOrderingWindow(db *gorm.DB, closer *AutoCloser) *OrderingWindow {
	return &OrderingWindow{DB: db, AutoCloser: closer}
}

// Status returns the stored window state for day, defaulting to closed when
// no row exists yet.
func (w *OrderingWindow) Status(day string) (models.OrderStatus, error) {
	var status models.OrderStatus
	err := w.DB.Where("status_date = ?", day).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderStatus{StatusDate: day, IsOpen: false}, nil
	}
	if err != nil {
		return models.OrderStatus{}, err
	}
	return status, nil
}

// SetStatus opens or closes the window for day. Opening requires a cut-off
// record for that day: the cut-off time is copied onto the status row and the
// auto-close is armed. Closing always succeeds and leaves CutOffTime as is.
func (w *OrderingWindow) SetStatus(day string, isOpen bool) (models.OrderStatus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var status models.OrderStatus
	err := w.DB.Where("status_date = ?", day).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = models.OrderStatus{StatusDate: day}
	} else if err != nil {
		return models.OrderStatus{}, err
	}

	status.IsOpen = isOpen

	if isOpen {
		var cutoff models.Cutoff
		err := w.DB.Where("cutoff_date = ?", day).First(&cutoff).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OrderStatus{}, ErrCutoffNotSet
		}
		if err != nil {
			return models.OrderStatus{}, err
		}
		cutOffTime := cutoff.CutoffTime
		status.CutOffTime = &cutOffTime
	}

	if err := w.DB.Save(&status).Error; err != nil {
		return models.OrderStatus{}, err
	}

	if isOpen {
		if err := w.AutoCloser.Schedule(day, *status.CutOffTime); err != nil {
			utils.ErrorLogger.Printf("Error scheduling auto close for %s: %v", day, err)
		}
		utils.InfoLogger.Printf("Orders opened for %s, closing at %s", day, *status.CutOffTime)
	} else {
		utils.InfoLogger.Printf("Orders closed for %s", day)
	}

	return status, nil
}

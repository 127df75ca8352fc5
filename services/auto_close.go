package services

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

// AutoCloser owns the pending auto-close timers, at most one per day.
// Re-arming a day cancels its previous timer first, so opening the window
// twice cannot stack two close events.
type AutoCloser struct {
	DB *gorm.DB

	mu     sync.Mutex
	timers map[string]*time.Timer

	// now is swapped out in tests to sit just before the cut-off.
	now func() time.Time
}

func NewAutoCloser(db *gorm.DB) *AutoCloser {
	return &AutoCloser{
		DB:     db,
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
}

// Schedule arms the automatic close of day's ordering window at cutOffTime
// ("HH:MM:SS", server local). A cut-off that already passed today is a no-op:
// opening after the nominal cut-off does not immediately re-close.
func (ac *AutoCloser) Schedule(day, cutOffTime string) error {
	tod, err := time.Parse(utils.TimeLayout, cutOffTime)
	if err != nil {
		return ErrBadTimeFormat
	}

	ref := ac.now()
	target := time.Date(ref.Year(), ref.Month(), ref.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, ref.Location())

	delay := target.Sub(ref)
	if delay <= 0 {
		utils.InfoLogger.Printf("Cut-off time already passed for %s, no auto-close scheduled", day)
		return nil
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	if prev, ok := ac.timers[day]; ok {
		prev.Stop()
	}
	ac.timers[day] = time.AfterFunc(delay, func() {
		ac.fire(day)
	})

	utils.InfoLogger.Printf("Scheduling order close for %s in %.1f mins", day, delay.Minutes())
	return nil
}

// fire force-writes the closed state. Last-writer-wins: no check of what
// happened to the status or cutoff in the meantime. There is no caller left
// to report to, so a failed write is only logged.
func (ac *AutoCloser) fire(day string) {
	ac.mu.Lock()
	delete(ac.timers, day)
	ac.mu.Unlock()

	if err := ac.DB.Model(&models.OrderStatus{}).
		Where("status_date = ?", day).
		Update("is_open", false).Error; err != nil {
		utils.ErrorLogger.Printf("Error auto-closing orders for %s: %v", day, err)
		return
	}
	utils.InfoLogger.Printf("Order automatically closed for %s", day)
}

// HasPending reports whether a close is still armed for day.
func (ac *AutoCloser) HasPending(day string) bool {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	_, ok := ac.timers[day]
	return ok
}

// Stop cancels every armed timer, used on shutdown.
func (ac *AutoCloser) Stop() {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	for day, t := range ac.timers {
		t.Stop()
		delete(ac.timers, day)
	}
}

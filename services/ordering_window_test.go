package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

func TestStatusDefaultsToClosed(t *testing.T) {
	db := setupStatusDB(t)
	w := NewOrderingWindow(db, NewAutoCloser(db))

	status, err := w.Status("2025-06-02")
	assert.NoError(t, err)
	assert.False(t, status.IsOpen)
	assert.Nil(t, status.CutOffTime)
}

func TestOpenWithoutCutoffFails(t *testing.T) {
	db := setupStatusDB(t)
	w := NewOrderingWindow(db, NewAutoCloser(db))
	day := utils.DayKey()

	_, err := w.SetStatus(day, true)
	assert.ErrorIs(t, err, ErrCutoffNotSet)

	status, err := w.Status(day)
	assert.NoError(t, err)
	assert.False(t, status.IsOpen)
}

func TestOpenCapturesCutoffAndArmsTimer(t *testing.T) {
	db := setupStatusDB(t)
	ac := NewAutoCloser(db)
	ac.now = clockAt(9, 0, 0, 0)
	w := NewOrderingWindow(db, ac)
	day := utils.DayKey()

	db.Create(&models.Cutoff{CutoffDate: day, CutoffTime: "13:00:00", LastUpdatedBy: "hr.ana"})

	status, err := w.SetStatus(day, true)
	assert.NoError(t, err)
	assert.True(t, status.IsOpen)
	if assert.NotNil(t, status.CutOffTime) {
		assert.Equal(t, "13:00:00", *status.CutOffTime)
	}
	assert.True(t, ac.HasPending(day))
}

func TestCloseKeepsCutoffTime(t *testing.T) {
	db := setupStatusDB(t)
	ac := NewAutoCloser(db)
	ac.now = clockAt(9, 0, 0, 0)
	w := NewOrderingWindow(db, ac)
	day := utils.DayKey()

	db.Create(&models.Cutoff{CutoffDate: day, CutoffTime: "13:00:00"})
	_, err := w.SetStatus(day, true)
	assert.NoError(t, err)

	status, err := w.SetStatus(day, false)
	assert.NoError(t, err)
	assert.False(t, status.IsOpen)
	if assert.NotNil(t, status.CutOffTime) {
		assert.Equal(t, "13:00:00", *status.CutOffTime)
	}
}

// Open at "09:00", cut-off "13:00": the window must close on its own with no
// explicit close call once the cut-off passes.
func TestWindowAutoClosesAtCutoff(t *testing.T) {
	db := setupStatusDB(t)
	ac := NewAutoCloser(db)
	ac.now = clockAt(12, 59, 59, 900)
	w := NewOrderingWindow(db, ac)
	day := utils.DayKey()

	db.Create(&models.Cutoff{CutoffDate: day, CutoffTime: "13:00:00"})

	status, err := w.SetStatus(day, true)
	assert.NoError(t, err)
	assert.True(t, status.IsOpen)

	assert.Eventually(t, func() bool {
		status, err := w.Status(day)
		return err == nil && !status.IsOpen
	}, 2*time.Second, 20*time.Millisecond)

	// The cut-off time recorded at open is still on the row.
	status, err = w.Status(day)
	assert.NoError(t, err)
	if assert.NotNil(t, status.CutOffTime) {
		assert.Equal(t, "13:00:00", *status.CutOffTime)
	}
}

// A cutoff changed after opening does not rewrite the status row or the armed
// timer; re-opening picks the new value up.
func TestLaterCutoffChangeDoesNotResync(t *testing.T) {
	db := setupStatusDB(t)
	ac := NewAutoCloser(db)
	ac.now = clockAt(9, 0, 0, 0)
	w := NewOrderingWindow(db, ac)
	day := utils.DayKey()

	var cutoff = models.Cutoff{CutoffDate: day, CutoffTime: "13:00:00"}
	db.Create(&cutoff)
	_, err := w.SetStatus(day, true)
	assert.NoError(t, err)

	cutoff.CutoffTime = "15:00:00"
	db.Save(&cutoff)

	status, err := w.Status(day)
	assert.NoError(t, err)
	assert.Equal(t, "13:00:00", *status.CutOffTime)

	status, err = w.SetStatus(day, true)
	assert.NoError(t, err)
	assert.Equal(t, "15:00:00", *status.CutOffTime)
}

package models

import "time"

// OrderStatus is the per-day ordering window. A day without a row is closed.
// CutOffTime is a copy of the Cutoff record taken at the moment the window
// opened; a later cutoff change does not rewrite it.
type OrderStatus struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	StatusDate string  `gorm:"type:varchar(10);not null;uniqueIndex" json:"status_date"`
	IsOpen     bool    `gorm:"not null;default:false" json:"is_open"`
	CutOffTime *string `gorm:"type:varchar(8)" json:"cut_off_time,omitempty"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package models

import "time"

// Cutoff holds the time of day after which ordering closes, one row per date.
type Cutoff struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	CutoffDate    string `gorm:"type:varchar(10);not null;uniqueIndex" json:"cutoff_date"`
	CutoffTime    string `gorm:"type:varchar(8);not null" json:"cutoff_time"`
	LastUpdatedBy string `gorm:"type:varchar(255)" json:"last_updated_by"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package models

import "time"

// DailyMenu is one item on the HR-curated menu for a single day.
// (menu_date, item_name) is unique so re-posting the same menu skips duplicates.
type DailyMenu struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	MenuDate  string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_menu_date_item" json:"menu_date"`
	ItemName  string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_menu_date_item" json:"item_name"`
	ItemPrice float64 `gorm:"type:decimal(10,2);not null" json:"item_price"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

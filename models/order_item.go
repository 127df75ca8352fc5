package models

import "time"

// OrderItem is one line of an Order, keyed inside the order by the item name.
// A line with Qty==0 is a tombstone: it stays in the table so a stale partial
// update cannot resurrect a removed item, but every read filters it out.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;uniqueIndex:idx_order_item_name" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order     Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_order_item_name" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Qty       int       `gorm:"not null" json:"qty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

package models

import "time"

// Order is one user's lunch order for one day, unique on (user_id, order_date).
// TotalAmount is derived from the qty>0 items and recomputed on every write;
// a client-supplied total is never trusted.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;uniqueIndex:idx_user_order_date" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderDate   string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_order_date" json:"order_date"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// VisibleItems filters out qty=0 tombstones.
func (o *Order) VisibleItems() []OrderItem {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		if it.Qty > 0 {
			items = append(items, it)
		}
	}
	return items
}

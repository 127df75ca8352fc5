package services

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

// ItemInput is one requested line of an order submission.
type ItemInput struct {
	Name  string
	Price float64
	Qty   int
}

// OrderReconciler merges a submitted item list into a user's order for the
// day. One reconciliation runs at a time per (user, day): the read-merge-write
// happens under a keyed lock and inside a single transaction.
//
// Removed lines are tombstoned, not deleted: any existing line the request
// does not name is set to qty 0 in place. That keeps a concurrent partial
// update from resurrecting a removed item. Every read filters qty>0 and the
// stored total only counts qty>0 lines.
type OrderReconciler struct {
	DB *gorm.DB

	mu    sync.Mutex
	locks map[string]*orderLock
}

// orderLock is refcounted so the entry can be evicted once the last waiter
// is gone; the lock table stays bounded by in-flight requests, not by days.
type orderLock struct {
	mu   sync.Mutex
	refs int
}

func NewOrderReconciler(db *gorm.DB) *OrderReconciler {
	return &OrderReconciler{DB: db, locks: make(map[string]*orderLock)}
}

func (r *OrderReconciler) lock(userID uint, day string) func() {
	key := fmt.Sprintf("%d|%s", userID, day)

	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &orderLock{}
		r.locks[key] = l
	}
	l.refs++
	r.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		r.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, key)
		}
		r.mu.Unlock()
	}
}

// Submit creates the user's order for the day, or merges into the existing
// one. The bool reports whether a new order was created.
func (r *OrderReconciler) Submit(userID uint, day string, items []ItemInput) (*models.Order, bool, error) {
	return r.reconcile(userID, day, items, true)
}

// Update merges like Submit but fails when the user has no order for the day yet.
func (r *OrderReconciler) Update(userID uint, day string, items []ItemInput) (*models.Order, error) {
	order, _, err := r.reconcile(userID, day, items, false)
	return order, err
}

func (r *OrderReconciler) reconcile(userID uint, day string, items []ItemInput, createIfMissing bool) (*models.Order, bool, error) {
	if userID == 0 {
		return nil, false, ErrMissingUserID
	}
	if len(items) == 0 {
		return nil, false, ErrNoItems
	}

	unlock := r.lock(userID, day)
	defer unlock()

	var order models.Order
	err := r.DB.Preload("Items").
		Where("user_id = ? AND order_date = ?", userID, day).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !createIfMissing {
			return nil, false, ErrNoOrderFound
		}
		created, err := r.create(userID, day, items)
		return created, true, err
	}
	if err != nil {
		return nil, false, err
	}

	requested := make(map[string]ItemInput, len(items))
	for _, it := range items {
		requested[it.Name] = it
	}

	// Overwrite lines named in the request, tombstone the rest.
	existing := make(map[string]bool, len(order.Items))
	for i := range order.Items {
		existing[order.Items[i].Name] = true
		if req, ok := requested[order.Items[i].Name]; ok {
			order.Items[i].Qty = req.Qty
			order.Items[i].Price = req.Price
		} else {
			order.Items[i].Qty = 0
		}
	}

	// Append names the order has not seen before.
	for _, it := range items {
		if existing[it.Name] || it.Qty <= 0 {
			continue
		}
		order.Items = append(order.Items, models.OrderItem{
			OrderID: order.ID,
			Name:    it.Name,
			Price:   it.Price,
			Qty:     it.Qty,
		})
	}

	order.TotalAmount = totalOf(order.Items)

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range order.Items {
			if err := tx.Save(&order.Items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("total_amount", order.TotalAmount).Error
	})
	if err != nil {
		return nil, false, err
	}

	// Tombstones stay in the table but never leave the service.
	order.Items = order.VisibleItems()

	utils.InfoLogger.Printf("Order updated for user %d on %s, total %.2f", userID, day, order.TotalAmount)
	return &order, false, nil
}

func (r *OrderReconciler) create(userID uint, day string, items []ItemInput) (*models.Order, error) {
	order := models.Order{
		UserID:    userID,
		OrderDate: day,
	}
	// Lines submitted at qty<=0 on a brand-new order are simply not added.
	for _, it := range items {
		if it.Qty <= 0 {
			continue
		}
		order.Items = append(order.Items, models.OrderItem{
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
	}
	order.TotalAmount = totalOf(order.Items)

	if err := r.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New order created for user %d on %s, total %.2f", userID, day, order.TotalAmount)
	return &order, nil
}

// Cancel removes the user's order for the day, header and lines together.
func (r *OrderReconciler) Cancel(userID uint, day string) error {
	if userID == 0 {
		return ErrMissingUserID
	}

	unlock := r.lock(userID, day)
	defer unlock()

	var order models.Order
	err := r.DB.Where("user_id = ? AND order_date = ?", userID, day).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Order deleted for user %d on %s", userID, day)
	return nil
}

// Get returns the user's order for the day with tombstones filtered out.
func (r *OrderReconciler) Get(userID uint, day string) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}

	var order models.Order
	err := r.DB.Preload("Items", "qty > 0").Preload("User").
		Where("user_id = ? AND order_date = ?", userID, day).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOrderFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// All returns every order for the day for the HR summary, qty>0 lines only.
func (r *OrderReconciler) All(day string) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items", "qty > 0").Preload("User").
		Where("order_date = ?", day).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func totalOf(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		if it.Qty > 0 {
			total += it.Price * float64(it.Qty)
		}
	}
	return total
}

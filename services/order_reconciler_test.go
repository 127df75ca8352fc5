package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

const testDay = "2025-06-02"

func setupReconcilerDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		panic(err)
	}
	return db
}

func TestSubmitCreatesOrder(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	order, created, err := r.Submit(1, testDay, []ItemInput{
		{Name: "Adobo", Price: 120, Qty: 2},
		{Name: "Halo-halo", Price: 80, Qty: 0}, // never added on a fresh order
	})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Adobo", order.Items[0].Name)
	assert.Equal(t, 240.0, order.TotalAmount)
}

func TestSubmitValidation(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	_, _, err := r.Submit(0, testDay, []ItemInput{{Name: "Adobo", Price: 120, Qty: 1}})
	assert.ErrorIs(t, err, ErrMissingUserID)

	_, _, err = r.Submit(1, testDay, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestSubmitIsIdempotent(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))
	items := []ItemInput{
		{Name: "Adobo", Price: 120, Qty: 2},
		{Name: "Sinigang", Price: 150, Qty: 1},
	}

	first, _, err := r.Submit(7, testDay, items)
	assert.NoError(t, err)
	second, created, err := r.Submit(7, testDay, items)
	assert.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.TotalAmount, second.TotalAmount)
	assert.Equal(t, len(first.VisibleItems()), len(second.VisibleItems()))

	got, err := r.Get(7, testDay)
	assert.NoError(t, err)
	assert.Equal(t, 390.0, got.TotalAmount)
	assert.Len(t, got.Items, 2)
}

func TestMergeTombstonesRemovedLines(t *testing.T) {
	db := setupReconcilerDB(t)
	r := NewOrderReconciler(db)

	_, _, err := r.Submit(3, testDay, []ItemInput{
		{Name: "A", Price: 100, Qty: 2},
		{Name: "B", Price: 50, Qty: 1},
	})
	assert.NoError(t, err)

	// B is not in the new payload: it must become a qty=0 tombstone, not
	// vanish, and C must be appended.
	order, created, err := r.Submit(3, testDay, []ItemInput{
		{Name: "A", Price: 100, Qty: 3},
		{Name: "C", Price: 70, Qty: 1},
	})
	assert.NoError(t, err)
	assert.False(t, created)

	visible := order.VisibleItems()
	assert.Len(t, visible, 2)
	names := map[string]int{}
	for _, it := range visible {
		names[it.Name] = it.Qty
	}
	assert.Equal(t, 3, names["A"])
	assert.Equal(t, 1, names["C"])
	assert.Equal(t, 100.0*3+70.0*1, order.TotalAmount)

	// The tombstone row is still in the table.
	var tombstone models.OrderItem
	err = db.Where("order_id = ? AND name = ?", order.ID, "B").First(&tombstone).Error
	assert.NoError(t, err)
	assert.Equal(t, 0, tombstone.Qty)

	// But reads never show it.
	got, err := r.Get(3, testDay)
	assert.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestZeroQtySubmissionEmptiesOrder(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	_, _, err := r.Submit(4, testDay, []ItemInput{{Name: "A", Price: 100, Qty: 2}})
	assert.NoError(t, err)

	order, _, err := r.Submit(4, testDay, []ItemInput{{Name: "A", Price: 100, Qty: 0}})
	assert.NoError(t, err)
	assert.Empty(t, order.VisibleItems())
	assert.Equal(t, 0.0, order.TotalAmount)
}

func TestUpdateRequiresExistingOrder(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	_, err := r.Update(9, testDay, []ItemInput{{Name: "A", Price: 100, Qty: 1}})
	assert.ErrorIs(t, err, ErrNoOrderFound)
}

func TestCancelThenFreshCreate(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	_, _, err := r.Submit(5, testDay, []ItemInput{{Name: "A", Price: 100, Qty: 1}})
	assert.NoError(t, err)

	assert.NoError(t, r.Cancel(5, testDay))

	_, err = r.Get(5, testDay)
	assert.True(t, errors.Is(err, ErrNoOrderFound))

	assert.ErrorIs(t, r.Cancel(5, testDay), ErrNoOrderFound)

	// Resubmitting starts over, it does not resurrect the old lines.
	order, created, err := r.Submit(5, testDay, []ItemInput{{Name: "B", Price: 60, Qty: 2}})
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, order.VisibleItems(), 1)
	assert.Equal(t, 120.0, order.TotalAmount)
}

func TestLockTableIsEvictedWhenIdle(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	days := []string{"2025-06-02", "2025-06-03", "2025-06-04"}
	for _, day := range days {
		_, _, err := r.Submit(1, day, []ItemInput{{Name: "A", Price: 100, Qty: 1}})
		assert.NoError(t, err)
	}
	assert.NoError(t, r.Cancel(1, days[0]))

	r.mu.Lock()
	assert.Empty(t, r.locks)
	r.mu.Unlock()

	// Contended entries still serialize, then disappear too.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := r.Submit(2, testDay, []ItemInput{{Name: "B", Price: 50, Qty: 2}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.Get(2, testDay)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, got.TotalAmount)

	r.mu.Lock()
	assert.Empty(t, r.locks)
	r.mu.Unlock()
}

func TestAllAggregatesConsistently(t *testing.T) {
	r := NewOrderReconciler(setupReconcilerDB(t))

	_, _, err := r.Submit(1, testDay, []ItemInput{
		{Name: "A", Price: 100, Qty: 2},
		{Name: "B", Price: 50, Qty: 1},
	})
	assert.NoError(t, err)
	_, _, err = r.Submit(2, testDay, []ItemInput{{Name: "C", Price: 70, Qty: 3}})
	assert.NoError(t, err)

	// Tombstone one of user 1's lines so the day has a qty=0 row.
	_, _, err = r.Submit(1, testDay, []ItemInput{{Name: "A", Price: 100, Qty: 2}})
	assert.NoError(t, err)

	orders, err := r.All(testDay)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	var fromLines, fromHeaders float64
	for _, o := range orders {
		fromHeaders += o.TotalAmount
		for _, it := range o.Items {
			assert.Greater(t, it.Qty, 0)
			fromLines += it.Price * float64(it.Qty)
		}
	}
	assert.Equal(t, fromHeaders, fromLines)
}

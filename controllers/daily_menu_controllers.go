package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

type DailyMenuController struct {
	DB *gorm.DB
}

func NewDailyMenuController(db *gorm.DB) *DailyMenuController {
	return &DailyMenuController{DB: db}
}

// InsertDailyMenu inserts today's menu items in one batch. Items already on
// today's menu are skipped, not overwritten.
func (dc *DailyMenuController) InsertDailyMenu(c *gin.Context) {
	type itemReq struct {
		ItemName  string  `json:"itemName" binding:"required"`
		ItemPrice float64 `json:"itemPrice"`
	}
	type request struct {
		Items []itemReq `json:"items" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("items are required"))
		return
	}

	today := utils.DayKey()
	inserted := 0

	for _, it := range req.Items {
		var count int64
		if err := dc.DB.Model(&models.DailyMenu{}).
			Where("menu_date = ? AND item_name = ?", today, it.ItemName).
			Count(&count).Error; err != nil {
			respondServiceError(c, err)
			return
		}
		if count > 0 {
			utils.InfoLogger.Printf("Skipping duplicate menu item %q for %s", it.ItemName, today)
			continue
		}

		item := models.DailyMenu{
			MenuDate:  today,
			ItemName:  it.ItemName,
			ItemPrice: it.ItemPrice,
		}
		if err := dc.DB.Create(&item).Error; err != nil {
			respondServiceError(c, err)
			return
		}
		inserted++
	}

	utils.InfoLogger.Printf("Daily menu inserted for %s, %d new items", today, inserted)
	utils.RespondJSON(c, http.StatusCreated,
		fmt.Sprintf("Daily menu inserted successfully. %d new items added. Duplicates were skipped.", inserted), nil)
}

// GetTodayDailyMenu -> today's menu sorted by item name, 404 when empty.
func (dc *DailyMenuController) GetTodayDailyMenu(c *gin.Context) {
	today := utils.DayKey()

	var menu []models.DailyMenu
	if err := dc.DB.Where("menu_date = ?", today).Order("item_name ASC").Find(&menu).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if len(menu) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("no menu set for today"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Daily menu for today", menu)
}

// UpdateDailyMenuItem renames or reprices one item, identified by (date, name).
func (dc *DailyMenuController) UpdateDailyMenuItem(c *gin.Context) {
	type request struct {
		ItemName     string   `json:"itemName" binding:"required"`
		Date         string   `json:"date" binding:"required"`
		NewItemName  *string  `json:"newItemName"`
		NewItemPrice *float64 `json:"newItemPrice"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("itemName and date are required"))
		return
	}

	var item models.DailyMenu
	err := dc.DB.Where("menu_date = ? AND item_name = ?", req.Date, req.ItemName).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found for the given date"))
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.NewItemName != nil {
		item.ItemName = *req.NewItemName
	}
	if req.NewItemPrice != nil {
		item.ItemPrice = *req.NewItemPrice
	}
	if err := dc.DB.Save(&item).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated successfully", item)
}

// DeleteDailyMenuItem removes one item, identified by (date, name).
func (dc *DailyMenuController) DeleteDailyMenuItem(c *gin.Context) {
	type request struct {
		ItemName string `json:"itemName" binding:"required"`
		Date     string `json:"date" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("itemName and date are required"))
		return
	}

	result := dc.DB.Where("menu_date = ? AND item_name = ?", req.Date, req.ItemName).Delete(&models.DailyMenu{})
	if result.Error != nil {
		respondServiceError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found for the given date"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted successfully", nil)
}

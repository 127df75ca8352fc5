package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiente-ken/Lunchmates/models"
	"github.com/ardiente-ken/Lunchmates/utils"
)

type CutoffController struct {
	DB *gorm.DB
}

func NewCutoffController(db *gorm.DB) *CutoffController {
	return &CutoffController{DB: db}
}

// SetTodayCutOff creates or overwrites today's cut-off time.
func (cc *CutoffController) SetTodayCutOff(c *gin.Context) {
	type request struct {
		Time      string `json:"time" binding:"required"`
		UpdatedBy string `json:"updatedBy"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("time is required"))
		return
	}
	if _, err := time.Parse(utils.TimeLayout, req.Time); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("time must be in HH:MM:SS format"))
		return
	}

	today := utils.DayKey()

	var cutoff models.Cutoff
	err := cc.DB.Where("cutoff_date = ?", today).First(&cutoff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cutoff = models.Cutoff{
			CutoffDate:    today,
			CutoffTime:    req.Time,
			LastUpdatedBy: req.UpdatedBy,
		}
		if err := cc.DB.Create(&cutoff).Error; err != nil {
			respondServiceError(c, err)
			return
		}
		utils.InfoLogger.Printf("Cut-off set for %s at %s by %s", today, req.Time, req.UpdatedBy)
		utils.RespondJSON(c, http.StatusCreated, "Cut-off time set for today", cutoff)
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cutoff.CutoffTime = req.Time
	cutoff.LastUpdatedBy = req.UpdatedBy
	if err := cc.DB.Save(&cutoff).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Cut-off updated for %s to %s by %s", today, req.Time, req.UpdatedBy)
	utils.RespondJSON(c, http.StatusOK, "Cut-off time updated for today", cutoff)
}

// GetTodayCutOff returns today's cut-off, 404 when HR has not set one yet.
func (cc *CutoffController) GetTodayCutOff(c *gin.Context) {
	today := utils.DayKey()

	var cutoff models.Cutoff
	err := cc.DB.Where("cutoff_date = ?", today).First(&cutoff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("no cut-off set for today"))
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cut-off for today", cutoff)
}

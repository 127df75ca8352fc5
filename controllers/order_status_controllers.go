package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardiente-ken/Lunchmates/services"
	"github.com/ardiente-ken/Lunchmates/utils"
)

type OrderStatusController struct {
	Window *services.OrderingWindow
}

func NewOrderStatusController(window *services.OrderingWindow) *OrderStatusController {
	return &OrderStatusController{Window: window}
}

// GetOrderStatus -> today's window state, closed by default.
func (osc *OrderStatusController) GetOrderStatus(c *gin.Context) {
	status, err := osc.Window.Status(utils.DayKey())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status for today", status)
}

// SetOrderStatus opens or closes today's window. Opening without a cut-off
// set for today is refused.
func (osc *OrderStatusController) SetOrderStatus(c *gin.Context) {
	type request struct {
		IsOpen *bool `json:"isOpen" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status, err := osc.Window.SetStatus(utils.DayKey(), *req.IsOpen)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated successfully", status)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardiente-ken/Lunchmates/services"
	"github.com/ardiente-ken/Lunchmates/utils"
)

type OrderController struct {
	Reconciler *services.OrderReconciler
}

func NewOrderController(reconciler *services.OrderReconciler) *OrderController {
	return &OrderController{Reconciler: reconciler}
}

type orderItemReq struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

type orderReq struct {
	UserID uint           `json:"userId" binding:"required"`
	Items  []orderItemReq `json:"items" binding:"required"`
}

func (req *orderReq) inputs() []services.ItemInput {
	items := make([]services.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.ItemInput{Name: it.Name, Price: it.Price, Qty: it.Qty})
	}
	return items
}

// SubmitOrder creates or merges today's order for the user.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, created, err := oc.Reconciler.Submit(req.UserID, utils.DayKey(), req.inputs())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if created {
		utils.RespondJSON(c, http.StatusCreated, "Order created successfully", order)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated successfully", order)
}

// UpdateOrder merges into an existing order only; 404 when none exists yet.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Reconciler.Update(req.UserID, utils.DayKey(), req.inputs())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated successfully", order)
}

// GetTodaysOrder -> the caller's order for today, tombstones excluded.
func (oc *OrderController) GetTodaysOrder(c *gin.Context) {
	userID, err := userIDQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Reconciler.Get(userID, utils.DayKey())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order for today", order)
}

// GetAllTodaysOrders -> HR view of every order for today.
func (oc *OrderController) GetAllTodaysOrders(c *gin.Context) {
	orders, err := oc.Reconciler.All(utils.DayKey())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All orders for today", orders)
}

// CancelOrder deletes today's order for the user.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	userID, err := userIDQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Reconciler.Cancel(userID, utils.DayKey()); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", nil)
}

func userIDQuery(c *gin.Context) (uint, error) {
	raw := c.Query("userId")
	if raw == "" {
		return 0, errors.New("missing userId")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid userId")
	}
	return uint(id), nil
}

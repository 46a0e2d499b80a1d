package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/supper-app/supper/models"
	"github.com/supper-app/supper/utils"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.RestaurantID == 0 || len(req.Items) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Missing restaurant or items")
		return
	}

	id, orderUID, err := h.Orders.CreateOrder(req)
	if err != nil {
		logrus.Errorf("failed to create order, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":        id,
		"order_uid": orderUID,
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var restaurantID *int64
	if raw := r.URL.Query().Get("restaurant_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid restaurant_id")
			return
		}
		restaurantID = &id
	}

	orders, err := h.Orders.ListOrders(restaurantID)
	if err != nil {
		logrus.Errorf("failed to list orders, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.RespondJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.Orders.GetOrder(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		logrus.Errorf("failed to fetch order %d, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	utils.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	type request struct {
		Status string `json:"status"`
	}
	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Status == "" {
		utils.RespondError(w, http.StatusBadRequest, "Status required")
		return
	}

	// status transitions are not validated at this layer
	if err := h.Orders.UpdateOrderStatus(id, req.Status); err != nil {
		logrus.Errorf("failed to update status for order %d, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	type request struct {
		DriverID int64 `json:"driver_id"`
	}
	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.DriverID == 0 {
		utils.RespondError(w, http.StatusBadRequest, "driver_id required")
		return
	}

	if err := h.Orders.AssignDriver(id, req.DriverID); err != nil {
		logrus.Errorf("failed to assign driver to order %d, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to assign driver")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/supper-app/supper/models"
	"github.com/supper-app/supper/utils"
)

func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Drivers.ListDrivers()
	if err != nil {
		logrus.Errorf("failed to list drivers, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch drivers")
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}
	utils.RespondJSON(w, http.StatusOK, drivers)
}

func (h *Handler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req models.DriverInput
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "name required")
		return
	}

	id, err := h.Drivers.CreateDriver(req)
	if err != nil {
		logrus.Errorf("failed to create driver, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to add driver")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":   id,
		"name": req.Name,
	})
}

package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/supper-app/supper/models"
	"github.com/supper-app/supper/utils"
)

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerInput
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name required")
		return
	}

	id, err := h.Customers.CreateCustomer(req)
	if err != nil {
		logrus.Errorf("failed to create customer, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":   id,
		"name": req.Name,
	})
}

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

func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		logrus.Errorf("failed to list restaurants, error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch restaurants")
		return
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	utils.RespondJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	restaurant, err := h.Catalog.GetRestaurant(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "Restaurant not found")
		return
	} else if err != nil {
		logrus.Errorf("failed to fetch restaurant %d, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load restaurant menu")
		return
	}

	menu, err := h.Catalog.ListAvailableMenu(id)
	if err != nil {
		logrus.Errorf("failed to fetch menu for restaurant %d, error: %v", id, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load restaurant menu")
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.RestaurantDetail{
		Restaurant: *restaurant,
		Categories: models.GroupMenu(menu),
	})
}

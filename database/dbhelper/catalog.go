package dbhelper

import (
	"github.com/supper-app/supper/models"
)

func (s *Store) ListRestaurants() ([]models.Restaurant, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, cuisine, rating, avg_time, description, address, image
		FROM restaurants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.Cuisine, &r.Rating, &r.AvgTime, &r.Description, &r.Address, &r.Image); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// GetRestaurant returns sql.ErrNoRows when the id does not exist.
func (s *Store) GetRestaurant(id int64) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.DB.QueryRow(`
		SELECT id, name, cuisine, rating, avg_time, description, address, image
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&r.ID, &r.Name, &r.Cuisine, &r.Rating, &r.AvgTime, &r.Description, &r.Address, &r.Image)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListAvailableMenu returns only items currently marked available.
func (s *Store) ListAvailableMenu(restaurantID int64) ([]models.MenuItem, error) {
	rows, err := s.DB.Query(`
		SELECT id, restaurant_id, category, name, description, price, image, available
		FROM menu_items
		WHERE restaurant_id = $1 AND available`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.Category, &m.Name, &m.Description, &m.Price, &m.Image, &m.Available); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

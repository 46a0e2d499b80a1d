package dbhelper

import (
	"github.com/supper-app/supper/models"
)

func (s *Store) ListDrivers() ([]models.Driver, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, phone, vehicle, status
		FROM delivery_agents
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Vehicle, &d.Status); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (s *Store) CreateDriver(in models.DriverInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(`
		INSERT INTO delivery_agents (name, phone, vehicle)
		VALUES ($1, $2, $3)
		RETURNING id`,
		in.Name, nullIfEmpty(in.Phone), nullIfEmpty(in.Vehicle)).Scan(&id)
	return id, err
}

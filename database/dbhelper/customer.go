package dbhelper

import (
	"database/sql"

	"github.com/supper-app/supper/models"
)

func (s *Store) CreateCustomer(in models.CustomerInput) (int64, error) {
	return insertCustomer(s.DB, in)
}

type rowQueryer interface {
	QueryRow(query string, args ...interface{}) *sql.Row
}

func insertCustomer(q rowQueryer, in models.CustomerInput) (int64, error) {
	var id int64
	err := q.QueryRow(`
		INSERT INTO customers (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		in.Name, nullIfEmpty(in.Email), nullIfEmpty(in.Phone), nullIfEmpty(in.Address)).Scan(&id)
	return id, err
}

// nullIfEmpty stores omitted and empty optional fields the same way: as NULL.
func nullIfEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

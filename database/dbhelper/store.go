package dbhelper

import "database/sql"

// Store bundles the query helpers around an injected connection pool.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

package models

type Driver struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Phone   *string `db:"phone" json:"phone"`
	Vehicle *string `db:"vehicle" json:"vehicle"`
	Status  string  `db:"status" json:"status"`
}

type DriverInput struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Vehicle *string `json:"vehicle"`
}

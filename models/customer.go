package models

type Customer struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Email   *string `db:"email" json:"email"`
	Phone   *string `db:"phone" json:"phone"`
	Address *string `db:"address" json:"address"`
}

// CustomerInput is the create-customer body, also accepted inline in an
// order request.
type CustomerInput struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

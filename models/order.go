package models

import "time"

const (
	StatusNew      = "new"
	StatusAssigned = "assigned"
)

type Order struct {
	ID              int64       `db:"id" json:"id"`
	OrderUID        string      `db:"order_uid" json:"order_uid"`
	CustomerID      *int64      `db:"customer_id" json:"customer_id"`
	RestaurantID    int64       `db:"restaurant_id" json:"restaurant_id"`
	DeliveryAddress *string     `db:"delivery_address" json:"delivery_address"`
	Subtotal        float64     `db:"subtotal" json:"subtotal"`
	Status          string      `db:"status" json:"status"`
	DeliveryAgentID *int64      `db:"delivery_agent_id" json:"delivery_agent_id"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
	Items           []OrderItem `db:"-" json:"items"`
}

// OrderItem carries the name and price snapshotted at order time; later menu
// edits do not touch it.
type OrderItem struct {
	ID         int64   `db:"id" json:"id"`
	OrderID    int64   `db:"order_id" json:"-"`
	MenuItemID int64   `db:"menu_item_id" json:"menu_item_id"`
	Name       string  `db:"name" json:"name"`
	Qty        int     `db:"qty" json:"qty"`
	Price      float64 `db:"price" json:"price"`
}

type OrderItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Qty        int   `json:"qty"`
}

// OrderRequest is the POST /orders body. The client identifies the customer
// either by id or by an inline customer object; there is intentionally no
// price field on items — prices always come from the menu.
type OrderRequest struct {
	CustomerID      *int64             `json:"customer_id"`
	NewCustomer     *CustomerInput     `json:"customer"`
	RestaurantID    int64              `json:"restaurant_id"`
	DeliveryAddress *string            `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items"`
}

// CustomerRef is the resolved form of the request's customer variant:
// exactly one of Existing/New is set, or neither (anonymous order).
type CustomerRef struct {
	Existing *int64
	New      *CustomerInput
}

// ResolveCustomer collapses the two body shapes into a tagged value before
// the order transaction starts. An explicit customer_id wins over an inline
// customer; an inline customer without a name counts as absent.
func (r *OrderRequest) ResolveCustomer() CustomerRef {
	if r.CustomerID != nil {
		return CustomerRef{Existing: r.CustomerID}
	}
	if r.NewCustomer != nil && r.NewCustomer.Name != "" {
		return CustomerRef{New: r.NewCustomer}
	}
	return CustomerRef{}
}

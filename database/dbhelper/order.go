package dbhelper

import (
	"database/sql"
	"fmt"

	"github.com/supper-app/supper/database"
	"github.com/supper-app/supper/models"
	"github.com/supper-app/supper/utils"
)

// CreateOrder runs the order-placement transaction: resolve the customer,
// snapshot every item's current name and price, compute the subtotal from
// those snapshots and insert the order with its line items. Any failure,
// including an unknown menu_item_id, rolls back everything.
func (s *Store) CreateOrder(req models.OrderRequest) (int64, string, error) {
	ref := req.ResolveCustomer()

	var orderID int64
	orderUID := utils.NewOrderUID()

	txErr := database.Tx(s.DB, func(tx *sql.Tx) error {
		customerID := ref.Existing
		if ref.New != nil {
			in := *ref.New
			if in.Address == nil || *in.Address == "" {
				in.Address = req.DeliveryAddress
			}
			id, err := insertCustomer(tx, in)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}
			customerID = &id
		}

		snapshots := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			var name string
			var price float64
			err := tx.QueryRow(`SELECT name, price FROM menu_items WHERE id = $1`, item.MenuItemID).
				Scan(&name, &price)
			if err == sql.ErrNoRows {
				return fmt.Errorf("invalid menu_item_id %d", item.MenuItemID)
			} else if err != nil {
				return err
			}

			snapshots = append(snapshots, models.OrderItem{
				MenuItemID: item.MenuItemID,
				Name:       name,
				Qty:        item.Qty,
				Price:      price,
			})
		}
		subtotal := orderSubtotal(snapshots)

		err := tx.QueryRow(`
			INSERT INTO orders (order_uid, customer_id, restaurant_id, delivery_address, subtotal, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			orderUID, customerID, req.RestaurantID, req.DeliveryAddress, subtotal, models.StatusNew).
			Scan(&orderID)
		if err != nil {
			return err
		}

		for _, item := range snapshots {
			_, err := tx.Exec(`
				INSERT INTO order_items (order_id, menu_item_id, name, qty, price)
				VALUES ($1, $2, $3, $4, $5)`,
				orderID, item.MenuItemID, item.Name, item.Qty, item.Price)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return 0, "", txErr
	}

	return orderID, orderUID, nil
}

// ListOrders returns orders newest first, each with its items. A nil
// restaurantID means no filter.
func (s *Store) ListOrders(restaurantID *int64) ([]models.Order, error) {
	query := `
		SELECT id, order_uid, customer_id, restaurant_id, delivery_address, subtotal, status, delivery_agent_id, created_at, updated_at
		FROM orders`
	args := []interface{}{}
	if restaurantID != nil {
		query += ` WHERE restaurant_id = $1`
		args = append(args, *restaurantID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.listOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// GetOrder returns sql.ErrNoRows when the id does not exist.
func (s *Store) GetOrder(id int64) (*models.Order, error) {
	var o models.Order
	row := s.DB.QueryRow(`
		SELECT id, order_uid, customer_id, restaurant_id, delivery_address, subtotal, status, delivery_agent_id, created_at, updated_at
		FROM orders
		WHERE id = $1`, id)
	if err := scanOrder(row, &o); err != nil {
		return nil, err
	}

	items, err := s.listOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// UpdateOrderStatus overwrites the status unconditionally. Any non-empty
// string is accepted; there is no transition validation at this layer.
func (s *Store) UpdateOrderStatus(id int64, status string) error {
	_, err := s.DB.Exec(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// AssignDriver sets the delivery agent and forces the status to "assigned",
// whatever it was before.
func (s *Store) AssignDriver(id, driverID int64) error {
	_, err := s.DB.Exec(`
		UPDATE orders SET delivery_agent_id = $1, status = $2, updated_at = NOW()
		WHERE id = $3`, driverID, models.StatusAssigned, id)
	return err
}

func (s *Store) listOrderItems(orderID int64) ([]models.OrderItem, error) {
	rows, err := s.DB.Query(`
		SELECT id, menu_item_id, name, qty, price
		FROM order_items
		WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.MenuItemID, &it.Name, &it.Qty, &it.Price); err != nil {
			return nil, err
		}
		it.OrderID = orderID
		items = append(items, it)
	}
	return items, rows.Err()
}

// orderSubtotal sums snapshotted price by quantity; client-supplied prices
// never enter this calculation.
func orderSubtotal(items []models.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Qty)
	}
	return subtotal
}

type orderScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row orderScanner, o *models.Order) error {
	return row.Scan(&o.ID, &o.OrderUID, &o.CustomerID, &o.RestaurantID, &o.DeliveryAddress,
		&o.Subtotal, &o.Status, &o.DeliveryAgentID, &o.CreatedAt, &o.UpdatedAt)
}

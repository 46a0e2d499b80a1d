package handlers

import (
	"github.com/supper-app/supper/models"
)

// CatalogStore reads restaurants and their menus.
type CatalogStore interface {
	ListRestaurants() ([]models.Restaurant, error)
	GetRestaurant(id int64) (*models.Restaurant, error)
	ListAvailableMenu(restaurantID int64) ([]models.MenuItem, error)
}

// CustomerStore creates customers.
type CustomerStore interface {
	CreateCustomer(in models.CustomerInput) (int64, error)
}

// OrderStore owns the order lifecycle.
type OrderStore interface {
	CreateOrder(req models.OrderRequest) (id int64, orderUID string, err error)
	ListOrders(restaurantID *int64) ([]models.Order, error)
	GetOrder(id int64) (*models.Order, error)
	UpdateOrderStatus(id int64, status string) error
	AssignDriver(id, driverID int64) error
}

// DriverStore manages delivery agents.
type DriverStore interface {
	ListDrivers() ([]models.Driver, error)
	CreateDriver(in models.DriverInput) (int64, error)
}

// Handler holds the store dependencies for every route. Stores are interfaces
// so tests can swap in doubles.
type Handler struct {
	Catalog   CatalogStore
	Customers CustomerStore
	Orders    OrderStore
	Drivers   DriverStore
}

func New(catalog CatalogStore, customers CustomerStore, orders OrderStore, drivers DriverStore) *Handler {
	return &Handler{
		Catalog:   catalog,
		Customers: customers,
		Orders:    orders,
		Drivers:   drivers,
	}
}

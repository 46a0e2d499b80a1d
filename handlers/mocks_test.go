package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"github.com/supper-app/supper/handlers"
	"github.com/supper-app/supper/models"
	"github.com/supper-app/supper/server"
)

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) ListRestaurants() ([]models.Restaurant, error) {
	args := m.Called()
	var out []models.Restaurant
	if v := args.Get(0); v != nil {
		out = v.([]models.Restaurant)
	}
	return out, args.Error(1)
}

func (m *mockCatalog) GetRestaurant(id int64) (*models.Restaurant, error) {
	args := m.Called(id)
	var out *models.Restaurant
	if v := args.Get(0); v != nil {
		out = v.(*models.Restaurant)
	}
	return out, args.Error(1)
}

func (m *mockCatalog) ListAvailableMenu(restaurantID int64) ([]models.MenuItem, error) {
	args := m.Called(restaurantID)
	var out []models.MenuItem
	if v := args.Get(0); v != nil {
		out = v.([]models.MenuItem)
	}
	return out, args.Error(1)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) CreateCustomer(in models.CustomerInput) (int64, error) {
	args := m.Called(in)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrders struct{ mock.Mock }

func (m *mockOrders) CreateOrder(req models.OrderRequest) (int64, string, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *mockOrders) ListOrders(restaurantID *int64) ([]models.Order, error) {
	args := m.Called(restaurantID)
	var out []models.Order
	if v := args.Get(0); v != nil {
		out = v.([]models.Order)
	}
	return out, args.Error(1)
}

func (m *mockOrders) GetOrder(id int64) (*models.Order, error) {
	args := m.Called(id)
	var out *models.Order
	if v := args.Get(0); v != nil {
		out = v.(*models.Order)
	}
	return out, args.Error(1)
}

func (m *mockOrders) UpdateOrderStatus(id int64, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *mockOrders) AssignDriver(id, driverID int64) error {
	return m.Called(id, driverID).Error(0)
}

type mockDrivers struct{ mock.Mock }

func (m *mockDrivers) ListDrivers() ([]models.Driver, error) {
	args := m.Called()
	var out []models.Driver
	if v := args.Get(0); v != nil {
		out = v.([]models.Driver)
	}
	return out, args.Error(1)
}

func (m *mockDrivers) CreateDriver(in models.DriverInput) (int64, error) {
	args := m.Called(in)
	return args.Get(0).(int64), args.Error(1)
}

type stores struct {
	catalog   *mockCatalog
	customers *mockCustomers
	orders    *mockOrders
	drivers   *mockDrivers
}

func newTestRouter(t *testing.T) (*mux.Router, *stores) {
	t.Helper()
	s := &stores{
		catalog:   new(mockCatalog),
		customers: new(mockCustomers),
		orders:    new(mockOrders),
		drivers:   new(mockDrivers),
	}
	h := handlers.New(s.catalog, s.customers, s.orders, s.drivers)
	svr := server.SetupRoutes(h, t.TempDir())
	return svr.Router, s
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

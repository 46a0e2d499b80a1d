package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/supper-app/supper/handlers"
	"github.com/supper-app/supper/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

// SetupRoutes wires the API routes plus the static frontend. staticDir is
// served at the root, after the API and health routes.
func SetupRoutes(h *handlers.Handler, staticDir string) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/restaurants", h.ListRestaurants).Methods("GET")
	api.HandleFunc("/restaurants/{id}", h.GetRestaurant).Methods("GET")

	api.HandleFunc("/customers", h.CreateCustomer).Methods("POST")

	api.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	api.HandleFunc("/orders", h.ListOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/status", h.UpdateOrderStatus).Methods("PUT")
	api.HandleFunc("/orders/{id}/assign", h.AssignDriver).Methods("PUT")

	api.HandleFunc("/drivers", h.ListDrivers).Methods("GET")
	api.HandleFunc("/drivers", h.CreateDriver).Methods("POST")

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              ":" + port,
		Handler:           cors.Default().Handler(svr.Router),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}

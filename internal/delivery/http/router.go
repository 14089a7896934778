package http

import (
	"net/http"

	"vetclinic-backend/internal/delivery/http/handler"
	"vetclinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router             *mux.Router
	ownerHandler       *handler.OwnerHandler
	animalHandler      *handler.AnimalHandler
	appointmentHandler *handler.AppointmentHandler
	invoiceHandler     *handler.InvoiceHandler
	treatmentHandler   *handler.TreatmentHandler
	productHandler     *handler.ProductHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	ownerHandler *handler.OwnerHandler,
	animalHandler *handler.AnimalHandler,
	appointmentHandler *handler.AppointmentHandler,
	invoiceHandler *handler.InvoiceHandler,
	treatmentHandler *handler.TreatmentHandler,
	productHandler *handler.ProductHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		ownerHandler:       ownerHandler,
		animalHandler:      animalHandler,
		appointmentHandler: appointmentHandler,
		invoiceHandler:     invoiceHandler,
		treatmentHandler:   treatmentHandler,
		productHandler:     productHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Owner routes
	api.HandleFunc("/owners", r.ownerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/owners", r.ownerHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/owners/search", r.ownerHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/owners/{id}", r.ownerHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/owners/{id}", r.ownerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/owners/{id}", r.ownerHandler.Delete).Methods(http.MethodDelete)

	// Animal routes
	api.HandleFunc("/animals", r.animalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/animals", r.animalHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/animals/count", r.animalHandler.Count).Methods(http.MethodGet)
	api.HandleFunc("/animals/{id}", r.animalHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/animals/{id}", r.animalHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/animals/{id}/deceased", r.animalHandler.MarkDeceased).Methods(http.MethodPatch)
	api.HandleFunc("/animals/{id}", r.animalHandler.Delete).Methods(http.MethodDelete)

	// Appointment routes
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPut)

	// Invoice routes
	api.HandleFunc("/invoices", r.invoiceHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}", r.invoiceHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}/pay", r.invoiceHandler.Pay).Methods(http.MethodPut)
	api.HandleFunc("/invoices/{id}/download", r.invoiceHandler.Download).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}/send-email", r.invoiceHandler.SendEmail).Methods(http.MethodPost)

	// Treatment catalog routes
	api.HandleFunc("/tratamientos", r.treatmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tratamientos", r.treatmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/tratamientos/{name}", r.treatmentHandler.GetByName).Methods(http.MethodGet)
	api.HandleFunc("/tratamientos/{name}", r.treatmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/tratamientos/{name}", r.treatmentHandler.Delete).Methods(http.MethodDelete)

	// Product routes
	api.HandleFunc("/productos", r.productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/productos", r.productHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/productos/busqueda", r.productHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/productos/ventas", r.productHandler.Sales).Methods(http.MethodGet)
	api.HandleFunc("/productos/{name}", r.productHandler.GetByName).Methods(http.MethodGet)
	api.HandleFunc("/productos/{name}", r.productHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/productos/{name}", r.productHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/productos/{name}/precio", r.productHandler.UpdatePrice).Methods(http.MethodPatch)
	api.HandleFunc("/productos/{name}/stock", r.productHandler.AdjustStock).Methods(http.MethodPatch)
	api.HandleFunc("/productos/{name}/venta", r.productHandler.Sell).Methods(http.MethodPost)

	// Shared middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

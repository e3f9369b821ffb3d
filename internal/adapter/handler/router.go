package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter wires the product routes behind one cross-origin policy.
func NewRouter(h *ProductHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Get("/product", h.ListProducts)
	r.Post("/product", h.CreateProduct)
	r.Get("/product/count", h.CountProducts)
	r.Get("/product/{id}", h.GetProduct)
	r.Put("/product/{id}", h.UpdateProduct)
	r.Delete("/product/{id}", h.DeleteProduct)

	return otelhttp.NewHandler(r, "webstore-api")
}

package api

import (
	_ "currex/docs"
	"currex/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI and Prometheus metrics
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Method("GET", "/metrics", promhttp.Handler())

	router.Get("/api/v1/currencies", rateHandler.GetCurrencies)
	router.Get("/api/v1/currencies/{code:[A-Za-z]{3}}", rateHandler.GetCurrency)
	router.Post("/api/v1/conversions", rateHandler.Convert)
	router.Get("/api/v1/conversions", rateHandler.GetHistory)
	return router
}

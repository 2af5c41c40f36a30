package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/StorefrontGo/internal/service"
	"github.com/utafrali/StorefrontGo/pkg/health"
	"github.com/utafrali/StorefrontGo/pkg/middleware"
)

// Services bundles the service dependencies of the router.
type Services struct {
	Cart       *service.CartService
	Catalog    *service.CatalogService
	Checkout   *service.CheckoutService
	Preference *service.PreferenceService
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	services Services,
	healthHandler *health.Handler,
	corsCfg middleware.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(corsCfg))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	cartHandler := NewCartHandler(services.Cart, logger)
	catalogHandler := NewCatalogHandler(services.Catalog, logger)
	checkoutHandler := NewCheckoutHandler(services.Checkout, logger)
	preferenceHandler := NewPreferenceHandler(services.Preference, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(Session)

		// Catalog
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/categories", catalogHandler.ListCategories)

		// Cart
		r.Get("/cart", cartHandler.GetCart)
		r.Delete("/cart", cartHandler.ClearCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Put("/cart/items/{productID}", cartHandler.UpdateItemQuantity)
		r.Delete("/cart/items/{productID}", cartHandler.RemoveItem)
		r.Put("/cart/open", cartHandler.SetOpen)

		// Checkout and orders
		r.Get("/checkout/quote", checkoutHandler.Quote)
		r.Post("/checkout", checkoutHandler.PlaceOrder)
		r.Get("/orders/{id}", checkoutHandler.GetOrder)

		// Preferences
		r.Get("/preferences/theme", preferenceHandler.GetTheme)
		r.Put("/preferences/theme", preferenceHandler.SetTheme)
	})

	return r
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kisanbazaar/kisanbazaar-backend/api/controllers"
	"github.com/kisanbazaar/kisanbazaar-backend/api/middleware"
	internalauth "github.com/kisanbazaar/kisanbazaar-backend/internal/auth"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/marketrates"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/orders"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/products"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/users"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/metrics"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/redis"
)

// Deps carries everything the router needs. Nil optional fields disable the
// corresponding middleware rather than panicking at mount time.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	DB    db.Pinger
	Cache *redis.Client

	AuthService        *internalauth.Service
	UserService        *users.Service
	ProductService     *products.Service
	OrderService       *orders.Service
	MarketRateService  *marketrates.Service
	PrometheusRegistry *prometheus.Registry
}

// New assembles the full HTTP surface.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	logg := deps.Logger
	jwtCfg := deps.Config.JWT

	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.CORS())

	registry := deps.PrometheusRegistry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpMetrics := metrics.NewHTTPMetrics(registry)
	r.Use(middleware.Metrics(httpMetrics))

	// a nil *redis.Client must stay a nil interface, or the readiness
	// nil check would pass and ping a missing client
	var cachePinger redis.Pinger
	if deps.Cache != nil {
		cachePinger = deps.Cache
	}

	r.Get("/health", controllers.Health(deps.DB, cachePinger, logg))
	r.Get("/health/live", controllers.Live())
	r.Get("/health/ready", controllers.Health(deps.DB, cachePinger, logg))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	loginLimit := middleware.AuthRateLimit(deps.Cache, middleware.LoginRateLimitPolicy(deps.Config.AuthRateLimit), logg)
	registerLimit := middleware.AuthRateLimit(deps.Cache, middleware.RegisterRateLimitPolicy(deps.Config.AuthRateLimit), logg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(registerLimit).Post("/register", controllers.Register(deps.AuthService, logg))
			r.With(loginLimit).Post("/login", controllers.Login(deps.AuthService, logg))
			r.Get("/verify-token", controllers.VerifyToken(deps.AuthService, logg))
		})

		r.Route("/market-rates", func(r chi.Router) {
			r.Get("/", controllers.ListMarketRates(deps.MarketRateService, logg))
			r.Get("/categories", controllers.ListRateCategories(deps.MarketRateService, logg))
			r.Get("/districts", controllers.ListRateDistricts(deps.MarketRateService, logg))
			r.Get("/category/{category}", controllers.ListMarketRatesByCategory(deps.MarketRateService, logg))
			r.Get("/search/{query}", controllers.SearchMarketRates(deps.MarketRateService, logg))
		})

		r.Get("/products", controllers.ListProducts(deps.ProductService, logg))
		r.Get("/products/{productId}", controllers.GetProduct(deps.ProductService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(jwtCfg, logg))

			r.Post("/products", controllers.CreateProduct(deps.ProductService, logg))
			r.Put("/products/{productId}", controllers.UpdateProduct(deps.ProductService, logg))
			r.Delete("/products/{productId}", controllers.DeleteProduct(deps.ProductService, logg))

			r.Post("/orders", controllers.CreateOrder(deps.OrderService, logg))
			r.Get("/orders", controllers.ListMyOrders(deps.OrderService, logg))
			// legacy client alias
			r.Get("/orders/my-orders", controllers.ListMyOrders(deps.OrderService, logg))

			r.Post("/payments/submit", controllers.SubmitPaymentProof(deps.OrderService, logg))

			r.Get("/users/me", controllers.GetMyProfile(deps.UserService, logg))
			r.Put("/users/me/payment-qr", controllers.UpdatePaymentQR(deps.UserService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(jwtCfg, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

		r.Get("/payments/pending", controllers.ListPendingPayments(deps.OrderService, logg))
		r.Put("/payments/{orderId}/verify", controllers.VerifyPayment(deps.OrderService, logg))

		r.Get("/farmers/unverified", controllers.ListUnverifiedFarmers(deps.UserService, logg))
		r.Put("/farmers/{userId}/verify", controllers.VerifyFarmer(deps.UserService, logg))

		r.Get("/users", controllers.ListAllUsers(deps.UserService, logg))
		r.Put("/users/{userId}/reset-password", controllers.ResetPassword(deps.UserService, logg))
	})

	return r
}

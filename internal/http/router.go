package http

import (
	"net/http"

	"travelease/internal/config"
	"travelease/internal/distance"
	"travelease/internal/gateway"
	"travelease/internal/http/handlers"
	"travelease/internal/http/middleware"
	"travelease/internal/idempotency"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps carries everything the route tree needs that is not the
// shared DB handle.
type RouterDeps struct {
	Env       config.Env
	Log       *zerolog.Logger
	Idem      idempotency.Store
	Estimator distance.Estimator
}

// NewRouter wires the full route tree: public catalog and auth, the
// signed gateway callback, and the JWT-protected user and provider
// surfaces.
func NewRouter(d RouterDeps) *gin.Engine {
	gin.SetMode(d.Env.GinMode)

	handlers.Configure(handlers.Deps{
		JWTSecret: []byte(d.Env.JWTSecret),
		Gateway:   gateway.Client{KeyID: d.Env.RazorpayKeyID, Secret: d.Env.RazorpaySecret},
		Idem:      d.Idem,
		Estimator: d.Estimator,
	})

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(d.Env.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", handlers.Health)
	api.GET("/db-check", handlers.DBCheck)

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(d.Env.CallbackRPS, d.Env.CallbackBurst))
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
	}

	// Public catalog. Optional auth so personalized responses can come
	// later without reshuffling routes.
	catalog := api.Group("")
	catalog.Use(middleware.Auth([]byte(d.Env.JWTSecret), false))
	{
		catalog.GET("/hotels", handlers.GetHotels)
		catalog.GET("/buses", handlers.GetBuses)
		catalog.GET("/cabs", handlers.GetCabs)
		catalog.GET("/packages", handlers.GetPackages)
	}

	payments := api.Group("/payments")
	payments.Use(middleware.RateLimit(d.Env.CallbackRPS, d.Env.CallbackBurst))
	{
		payments.POST("/callback", handlers.PaymentCallback)
	}

	user := api.Group("")
	user.Use(middleware.Auth([]byte(d.Env.JWTSecret), true))
	{
		user.GET("/profile", handlers.GetProfile)
		user.PUT("/profile", handlers.UpdateProfile)

		user.POST("/bookings", handlers.CreateBooking)
		user.GET("/bookings", handlers.ListBookings)
		user.GET("/bookings/:id", handlers.GetBooking)
		user.GET("/bookings/:id/checkout", handlers.GetBookingCheckout)
		user.GET("/bookings/:id/invoice", handlers.GetBookingInvoice)

		user.POST("/hotels/:id/rating", handlers.RateHotel)
		user.POST("/buses/:id/rating", handlers.RateBus)
	}

	provider := api.Group("/provider")
	provider.Use(middleware.Auth([]byte(d.Env.JWTSecret), true))
	{
		provider.GET("", handlers.GetProvider)
		provider.POST("", handlers.RegisterProvider)
		provider.GET("/services", handlers.ListProviderServices)
		provider.GET("/earnings", handlers.ProviderEarnings)

		provider.POST("/hotels", handlers.AddProviderHotel)
		provider.PUT("/hotels/:id", handlers.UpdateProviderHotel)
		provider.POST("/buses", handlers.AddProviderBus)
		provider.PUT("/buses/:id", handlers.UpdateProviderBus)
		provider.POST("/cabs", handlers.AddProviderCab)
		provider.PUT("/cabs/:id", handlers.UpdateProviderCab)

		provider.GET("/payouts", handlers.ListPayouts)
		provider.GET("/payouts/balance", handlers.PayoutBalance)
		provider.POST("/payouts/settle", handlers.WithdrawPayouts)
		provider.GET("/payouts/export", handlers.ExportPayouts)
	}

	return r
}

package api

import (
	stdhttp "net/http"

	intconfig "zambus/internal/config"
	h "zambus/internal/http/handlers"
	"zambus/internal/http/middleware"
	"zambus/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	roleCompany   = "company"
	rolePassenger = "passenger"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log().Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAuth := middleware.RequireAuth(hd.Authenticator())
	company := middleware.RequireRoles(roleCompany)
	passenger := middleware.RequireRoles(rolePassenger)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/insurance/plans", h.InsurancePlans)
		api.GET("/companies", hd.ListCompanies)
		api.GET("/companies/:id", hd.GetCompany)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", hd.Login)
		auth.POST("/register", hd.Register)
		auth.POST("/logout", requireAuth, hd.Logout)
		auth.GET("/me", requireAuth, hd.Me)

		private := api.Group("", requireAuth)

		private.GET("/notifications/ws", hd.Notifications)

		// Routes: anyone signed in can browse, operators manage their own.
		routes := private.Group("/routes")
		routes.GET("", hd.ListRoutes)
		routes.GET("/:id", hd.GetRoute)
		routes.POST("", company, hd.CreateRoute)
		routes.PUT("/:id", company, hd.UpdateRoute)
		routes.DELETE("/:id", company, hd.DeleteRoute)
		routes.PATCH("/:id/status", company, hd.SetRouteStatus)

		// Fleet
		buses := private.Group("/buses", company)
		buses.GET("", hd.ListBuses)
		buses.GET("/:id", hd.GetBus)
		buses.POST("", hd.CreateBus)
		buses.PUT("/:id", hd.UpdateBus)
		buses.DELETE("/:id", hd.DeleteBus)
		buses.PATCH("/:id/status", hd.SetBusStatus)

		// Schedules
		schedules := private.Group("/schedules")
		schedules.GET("", hd.ListSchedules)
		schedules.GET("/:id", hd.GetSchedule)
		schedules.POST("", company, hd.CreateSchedule)
		schedules.PUT("/:id", company, hd.UpdateSchedule)
		schedules.DELETE("/:id", company, hd.DeleteSchedule)
		schedules.PATCH("/:id/status", company, hd.SetScheduleStatus)

		// Bookings
		bookings := private.Group("/bookings")
		bookings.GET("", hd.ListBookings)
		bookings.GET("/:id", hd.GetBooking)
		bookings.GET("/:id/eticket", hd.BookingETicket)
		bookings.POST("", passenger, hd.CreateBooking)
		bookings.PUT("/:id", passenger, hd.UpdateBooking)
		bookings.POST("/:id/cancel", passenger, hd.CancelBooking)
		bookings.POST("/:id/complete", company, hd.CompleteBooking)

		// Payments
		payments := private.Group("/payments")
		payments.GET("", hd.ListPayments)
		payments.GET("/:id", hd.GetPayment)
		payments.GET("/:id/receipt", hd.PaymentReceipt)
		payments.POST("", passenger, hd.CreatePayment)
		payments.POST("/:id/refund", passenger, hd.RefundPayment)

		// Operator profile
		profile := private.Group("/company/profile", company)
		profile.GET("", hd.GetCompanyProfile)
		profile.PUT("", hd.UpdateCompanyProfile)
		private.GET("/company/dashboard", company, hd.CompanyDashboard)
	}

	return r
}

package api

import (
	stdhttp "net/http"

	intconfig "becak/internal/config"
	"becak/internal/http/handlers"
	"becak/internal/http/middleware"
	"becak/internal/logger"
	"becak/internal/session"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, h *handlers.Handler, reg *session.Registry, log logger.ILogger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.ForwardToken(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warning("failed to set trusted proxies", logger.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		// Screens below keep per-session state.
		app := api.Group("", middleware.Session(reg, env.SessionTTL))

		order := app.Group("/order")
		order.GET("", h.GetOrderScreen)
		order.POST("/transport", h.SelectTransport)
		order.GET("/tariffs", h.GetOrderTariffs)
		order.POST("/submit", h.SubmitOrder)

		payment := app.Group("/payment")
		payment.GET("", h.GetPayment)
		payment.POST("/confirm", h.ConfirmPayment)
		payment.GET("/receipt", h.GetReceipt)
		payment.GET("/receipt.pdf", h.GetReceiptPDF)

		app.GET("/orders", h.ListOrders)
		app.POST("/orders/:id/cancel", h.CancelOrder)

		driver := app.Group("", middleware.AuthRequired(h.Auth), middleware.RequireRoles("driver", "admin"))
		driver.GET("/driver/orders", h.ListDriverOrders)
		driver.POST("/orders/:id/accept", h.AcceptOrder)
		driver.POST("/orders/:id/complete", h.CompleteOrder)

		admin := app.Group("/admin", middleware.AuthRequired(h.Auth), middleware.RequireRoles("admin"))
		mountTariffAdmin(admin.Group("/tariffs"), h)
		admin.GET("/customers", h.ListCustomers)
		admin.GET("/customers/:id", h.GetCustomer)
	}

	return r
}

func mountTariffAdmin(g *gin.RouterGroup, h *handlers.Handler) {
	g.GET("", h.ListTariffs)
	g.POST("", h.CreateTariff)
	g.PUT("/:id", h.UpdateTariff)
	g.DELETE("/:id", h.DeleteTariff)
	g.PATCH("/:id/toggle", h.ToggleTariff)
}

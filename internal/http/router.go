package api

import (
	"log"
	stdhttp "net/http"

	intconfig "buslink/internal/config"
	"buslink/internal/domain/models"
	h "buslink/internal/http/handlers"
	"buslink/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Auth([]byte(env.JWTSecret))
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	vendorOrAdmin := middleware.RequireRoles(models.RoleVendor, models.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Routes: reads are public for the passenger front end
		routes := api.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.GET("/:id", h.GetRouteByID)
		routes.GET("/:id/seats", h.GetRouteSeats)
		routes.POST("", auth, vendorOrAdmin, h.CreateRoute)
		routes.PUT("/:id", auth, vendorOrAdmin, h.UpdateRoute)
		routes.DELETE("/:id", auth, vendorOrAdmin, h.DeleteRoute)
		routes.POST("/:id/seats/:seat/book", auth, h.BookRouteSeat)
		routes.POST("/:id/seats/:seat/unbook", auth, h.UnbookRouteSeat)

		// Vendors
		vendors := api.Group("/vendors", auth)
		vendors.GET("", adminOnly, h.GetVendors)
		vendors.GET("/:id", h.GetVendorByID)
		vendors.POST("", adminOnly, h.CreateVendor)
		vendors.PUT("/:id", adminOnly, h.UpdateVendor)
		vendors.DELETE("/:id", adminOnly, h.DeleteVendor)

		// Tickets
		tickets := api.Group("/tickets", auth)
		tickets.GET("", h.GetTickets)
		tickets.GET("/:id", h.GetTicketByID)
		tickets.POST("", h.CreateTicket)
		tickets.PUT("/:id/confirm", vendorOrAdmin, h.ConfirmTicket)
		tickets.PUT("/:id/cancel", h.CancelTicket)
		tickets.PUT("/:id/refund", vendorOrAdmin, h.RefundTicket)
		tickets.GET("/:id/e-ticket", h.GetTicketETicketPDF)

		// Notifications
		notifications := api.Group("/notifications", auth)
		notifications.GET("", h.GetNotifications)
		notifications.POST("", adminOnly, h.CreateNotification)
		notifications.PUT("/:id/read", h.MarkNotificationRead)

		// Reports
		reports := api.Group("/reports", auth, adminOnly)
		reports.GET("/summary", h.GetSummaryReport)
	}

	return r
}

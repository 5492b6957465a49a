package api

import (
	"log"
	stdhttp "net/http"

	"travelbackend/internal/auth"
	intconfig "travelbackend/internal/config"
	h "travelbackend/internal/http/handlers"
	"travelbackend/internal/http/middleware"
	"travelbackend/internal/metrics"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the HTTP layer needs. main wires it once at boot.
type Deps struct {
	Tokens *auth.TokenManager

	Auth         services.AuthService
	Destinations services.DestinationService
	Avenues      services.AvenueService
	Availability services.AvailabilityService
	Bookings     services.BookingService
	Transactions services.TransactionService
	Content      services.ContentService
	Stats        services.StatsService
	Docs         services.DocsService
}

func NewRouter(env intconfig.Env, d Deps) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Metrics())

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

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authH := h.AuthHandler{Service: d.Auth}
	userH := h.UserHandler{Service: d.Auth}
	destH := h.DestinationHandler{Service: d.Destinations}
	avenueH := h.AvenueHandler{Service: d.Avenues, Availability: d.Availability}
	bookingH := h.BookingHandler{Service: d.Bookings, Docs: d.Docs}
	txnH := h.TransactionHandler{Service: d.Transactions}
	contentH := h.ContentHandler{Service: d.Content}
	statsH := h.StatsHandler{Service: d.Stats}

	requireAuth := middleware.RequireAuth(d.Tokens)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.GET("/me", requireAuth, authH.Me)
		authGroup.PUT("/password", requireAuth, authH.UpdatePassword)

		// Users (admin directory)
		users := api.Group("/users", requireAuth, requireAdmin)
		users.GET("", userH.List)
		users.GET("/:id", userH.Get)
		users.PUT("/:id/password", userH.ResetPassword)

		// Destinations: browsing is public, mutations are admin-only.
		destinations := api.Group("/destinations")
		destinations.GET("", destH.List)
		destinations.GET("/:id", destH.Get)
		destinations.POST("", requireAuth, requireAdmin, destH.Create)
		destinations.PUT("/:id", requireAuth, requireAdmin, destH.Update)
		destinations.DELETE("/:id", requireAuth, requireAdmin, destH.Delete)

		// Avenues and availability search
		avenues := api.Group("/avenues")
		avenues.GET("", avenueH.List)
		avenues.GET("/available", avenueH.Available)
		avenues.GET("/:id", avenueH.Get)
		avenues.POST("", requireAuth, requireAdmin, avenueH.Create)
		avenues.PUT("/:id", requireAuth, requireAdmin, avenueH.Update)
		avenues.DELETE("/:id", requireAuth, requireAdmin, avenueH.Delete)

		// Bookings
		bookings := api.Group("/bookings", requireAuth)
		bookings.POST("", bookingH.Create)
		bookings.GET("/mine", bookingH.Mine)
		bookings.GET("/:id", bookingH.Get)
		bookings.POST("/:id/cancel", bookingH.Cancel)
		bookings.GET("/:id/e-ticket", bookingH.ETicket)
		bookings.GET("/:id/invoice", bookingH.Invoice)
		bookings.GET("", requireAdmin, bookingH.List)
		bookings.PUT("/:id/status", requireAdmin, bookingH.UpdateStatus)
		bookings.POST("/:id/scan", requireAdmin, bookingH.Scan)

		// Transactions (admin)
		transactions := api.Group("/transactions", requireAuth, requireAdmin)
		transactions.POST("", txnH.Create)
		transactions.GET("", txnH.List)
		transactions.GET("/:id", txnH.Get)
		transactions.PUT("/:id/status", txnH.UpdateStatus)

		// FAQs
		faqs := api.Group("/faqs")
		faqs.GET("", contentH.ListFAQs(true))
		faqs.GET("/all", requireAuth, requireAdmin, contentH.ListFAQs(false))
		faqs.POST("", requireAuth, requireAdmin, contentH.CreateFAQ)
		faqs.PUT("/:id", requireAuth, requireAdmin, contentH.UpdateFAQ)
		faqs.DELETE("/:id", requireAuth, requireAdmin, contentH.DeleteFAQ)

		// Legal pages: public read by slug, admin CRUD by id.
		api.GET("/legal-pages/:slug", contentH.GetLegalPageBySlug)
		legal := api.Group("/legal")
		legal.GET("", contentH.ListLegalPages(true))
		legal.GET("/all", requireAuth, requireAdmin, contentH.ListLegalPages(false))
		legal.POST("", requireAuth, requireAdmin, contentH.CreateLegalPage)
		legal.PUT("/:id", requireAuth, requireAdmin, contentH.UpdateLegalPage)
		legal.DELETE("/:id", requireAuth, requireAdmin, contentH.DeleteLegalPage)

		// Changelogs
		changelogs := api.Group("/changelogs")
		changelogs.GET("", contentH.ListChangeLogs(true))
		changelogs.GET("/all", requireAuth, requireAdmin, contentH.ListChangeLogs(false))
		changelogs.POST("", requireAuth, requireAdmin, contentH.CreateChangeLog)
		changelogs.PUT("/:id", requireAuth, requireAdmin, contentH.UpdateChangeLog)
		changelogs.DELETE("/:id", requireAuth, requireAdmin, contentH.DeleteChangeLog)

		// Contacts: submission is public, triage is admin-only.
		contacts := api.Group("/contacts")
		contacts.POST("", contentH.CreateContact)
		contacts.GET("", requireAuth, requireAdmin, contentH.ListContacts)
		contacts.GET("/:id", requireAuth, requireAdmin, contentH.GetContact)
		contacts.PUT("/:id/read", requireAuth, requireAdmin, contentH.MarkContactRead)
		contacts.DELETE("/:id", requireAuth, requireAdmin, contentH.DeleteContact)

		// Stats
		stats := api.Group("/stats", requireAuth)
		stats.GET("/me", statsH.Me)
		stats.GET("/overview", requireAdmin, statsH.Overview)
		stats.GET("/series", requireAdmin, statsH.Series)
	}

	h.SetRouter(r)
	return r
}

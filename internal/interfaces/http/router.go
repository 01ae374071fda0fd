// Package http wires the portal API server: one gin engine serving the
// endpoint table the client transport is written against.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fibra/internal/infrastructure/auth"
	"fibra/internal/infrastructure/persistence"
	"fibra/internal/interfaces/http/handlers"
	"fibra/internal/interfaces/http/middleware"
)

type Router struct {
	engine     *gin.Engine
	store      *persistence.Store
	jwtService *auth.JWTService
}

func NewRouter(store *persistence.Store, jwtService *auth.JWTService) *Router {
	return &Router{
		engine:     gin.New(),
		store:      store,
		jwtService: jwtService,
	}
}

// SetupRoutes registers every portal endpoint.
func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())

	authHandler := handlers.NewAuthHandler(r.store, r.jwtService)
	planHandler := handlers.NewPlanHandler(r.store)
	invoiceHandler := handlers.NewInvoiceHandler(r.store)
	claimHandler := handlers.NewClaimHandler(r.store)
	paymentHandler := handlers.NewPaymentHandler()
	newsHandler := handlers.NewNewsHandler(r.store)

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.POST("/login", authHandler.Login)

	authMiddleware := middleware.NewAuthMiddleware(r.jwtService)
	authorized := r.engine.Group("/", authMiddleware.RequireAuth())
	{
		authorized.GET("/plans", planHandler.List)
		authorized.GET("/plans/current", planHandler.Current)
		authorized.POST("/plans/change", planHandler.Change)
		authorized.GET("/invoices", invoiceHandler.List)
		authorized.GET("/claims", claimHandler.List)
		authorized.POST("/claims", claimHandler.Create)
		authorized.POST("/payments/report", paymentHandler.Report)
		authorized.GET("/news", newsHandler.List)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

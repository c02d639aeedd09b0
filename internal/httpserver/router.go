package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"silzey-pos/internal/catalog"
	"silzey-pos/internal/domain"
	"silzey-pos/internal/session"
)

// Register is the session runtime as seen by the handlers.
type Register interface {
	View(ctx context.Context) (session.View, error)
	Catalog(ctx context.Context) (catalog.Page, error)
	SetCategory(ctx context.Context, category string) (session.View, error)
	SetTagFilter(ctx context.Context, tag string) (session.View, error)
	SetSearchTerm(ctx context.Context, term string) (session.View, error)
	SetSortOption(ctx context.Context, opt catalog.SortOption) (session.View, error)
	LoadMore(ctx context.Context) (session.View, error)
	SelectProduct(ctx context.Context, productID string) (session.View, error)
	ClearSelection(ctx context.Context) (session.View, error)
	AddToCart(ctx context.Context, productID string) (session.View, error)
	RemoveFromCart(ctx context.Context, productID string) (session.View, error)
	AdjustQuantity(ctx context.Context, productID string, delta int) (session.View, error)
	OpenCart(ctx context.Context) (session.View, error)
	CloseCart(ctx context.Context) (session.View, error)
	ProceedToCheckout(ctx context.Context) (session.View, error)
	UpdateDraft(ctx context.Context, draft domain.CheckoutDraft) (session.View, error)
	CancelCheckout(ctx context.Context) (session.View, error)
	FinalizeSale(ctx context.Context, draft domain.CheckoutDraft) (session.View, error)
}

// Deps groups the collaborators of the HTTP layer.
type Deps struct {
	Register    Register
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Register == nil {
		return nil, errors.New("httpserver: register is required")
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery(), cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, deps.Register))

	h := &handlers{reg: deps.Register, logger: logger}
	api := router.Group("/api")

	api.GET("/session", h.getSession)

	api.GET("/catalog", h.getCatalog)
	api.GET("/catalog/meta", h.getCatalogMeta)
	api.POST("/catalog/category", h.setCategory)
	api.POST("/catalog/tag", h.setTag)
	api.POST("/catalog/search", h.setSearch)
	api.POST("/catalog/sort", h.setSort)
	api.POST("/catalog/more", h.loadMore)
	api.POST("/catalog/select", h.selectProduct)
	api.POST("/catalog/deselect", h.clearSelection)

	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addToCart)
	api.DELETE("/cart/items/:id", h.removeFromCart)
	api.POST("/cart/items/:id/adjust", h.adjustQuantity)
	api.POST("/cart/open", h.openCart)
	api.POST("/cart/close", h.closeCart)

	api.POST("/checkout", h.proceedToCheckout)
	api.PUT("/checkout/draft", h.updateDraft)
	api.POST("/checkout/cancel", h.cancelCheckout)
	api.POST("/checkout/finalize", h.finalizeSale)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// requestLogger logs each request with a short request id.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		requestID := uuid.New().String()[:8]
		c.Set("request_id", requestID)
		c.Header("X-Request-Id", requestID)

		c.Next()

		status := c.Writer.Status()
		evt := logger.Info()
		if status >= 500 {
			evt = logger.Error()
		}
		evt.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("http request")
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blackberrycakes/storefront/internal/catalog"
	"github.com/blackberrycakes/storefront/internal/orders"
	"github.com/blackberrycakes/storefront/internal/validation"
)

// AdminConfig groups dependencies for the admin routes. The admin panel
// works on its own seeded collections; it shares nothing with the
// storefront cart.
type AdminConfig struct {
	Catalog      *catalog.Repository
	Orders       *orders.Store
	CustomOrders *orders.CustomStore
	Logger       *zap.Logger
}

// RegisterAdminRoutes registers product CRUD, order management,
// custom-order management, and dashboard routes under /admin.
func RegisterAdminRoutes(r *gin.Engine, cfg AdminConfig) {
	v := validation.New()
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	admin := r.Group("/admin")

	admin.GET("/products", func(c *gin.Context) {
		products, err := cfg.Catalog.List(c.Request.Context(), catalog.Filters{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products})
	})

	admin.POST("/products", func(c *gin.Context) {
		var p catalog.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		created, err := cfg.Catalog.Create(c.Request.Context(), p)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create_failed"})
			return
		}
		logger.Info("product created", zap.String("id", created.ID), zap.String("name", created.Name))
		c.JSON(http.StatusCreated, gin.H{"data": created})
	})

	admin.PUT("/products/:id", func(c *gin.Context) {
		var p catalog.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		p.ID = c.Param("id")
		updated, err := cfg.Catalog.Update(c.Request.Context(), p)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": updated})
	})

	admin.DELETE("/products/:id", func(c *gin.Context) {
		if err := cfg.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	admin.GET("/orders", func(c *gin.Context) {
		f := orders.Filters{Status: c.Query("status")}
		if from := c.Query("from"); from != "" {
			if t, err := time.Parse("2006-01-02", from); err == nil {
				f.From = t
			}
		}
		if to := c.Query("to"); to != "" {
			if t, err := time.Parse("2006-01-02", to); err == nil {
				f.To = t
			}
		}
		list, err := cfg.Orders.List(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "orders_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	})

	admin.GET("/orders/:id", func(c *gin.Context) {
		o, err := cfg.Orders.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "orders_unavailable"})
			return
		}
		if o == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": o})
	})

	admin.PATCH("/orders/:id/status", func(c *gin.Context) {
		var req validation.StatusUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		o, err := cfg.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found"})
			return
		}
		logger.Info("order status updated",
			zap.String("id", o.ID),
			zap.String("status", o.Status))
		c.JSON(http.StatusOK, gin.H{"data": o})
	})

	admin.GET("/custom-orders", func(c *gin.Context) {
		list, err := cfg.CustomOrders.List(c.Request.Context(), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "custom_orders_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	})

	admin.PATCH("/custom-orders/:id", func(c *gin.Context) {
		var req validation.CustomOrderUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		o, err := cfg.CustomOrders.Update(c.Request.Context(), c.Param("id"), orders.CustomStatusUpdate{
			Status:      req.Status,
			AdminNotes:  req.AdminNotes,
			QuotedPrice: req.QuotedPrice,
		})
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "custom_order_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": o})
	})

	admin.GET("/dashboard", func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := cfg.Orders.Stats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats_unavailable"})
			return
		}
		count, err := cfg.CustomOrders.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats_unavailable"})
			return
		}
		stats.CustomOrderRequests = count
		c.JSON(http.StatusOK, gin.H{"data": stats})
	})
}

// Package handlers wires the storefront and admin HTTP routes.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blackberrycakes/storefront/internal/cart"
	"github.com/blackberrycakes/storefront/internal/catalog"
	"github.com/blackberrycakes/storefront/internal/checkout"
	"github.com/blackberrycakes/storefront/internal/orders"
	"github.com/blackberrycakes/storefront/internal/validation"
	"github.com/blackberrycakes/storefront/internal/whatsapp"
)

// CartIDHeader carries the buyer's opaque cart id. Responses echo the
// (possibly newly assigned) id back under the same header.
const CartIDHeader = "X-Cart-Id"

const trackNotFoundMsg = "Order not found. Please check your order number or phone number."

// StorefrontConfig groups dependencies for the storefront routes.
type StorefrontConfig struct {
	Catalog   *catalog.Repository
	Carts     *cart.Registry
	Orders    *orders.Store
	Validator *checkout.Validator
	Composer  *whatsapp.Composer
	Logger    *zap.Logger
}

// RegisterStorefrontRoutes registers catalog, cart, checkout, tracking, and
// custom-order routes.
func RegisterStorefrontRoutes(r *gin.Engine, cfg StorefrontConfig) {
	v := validation.New()
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r.GET("/products", func(c *gin.Context) {
		f := catalog.Filters{
			Search:      c.Query("search"),
			Category:    c.Query("category"),
			Subcategory: c.Query("subcategory"),
			Occasions:   c.QueryArray("occasion"),
			SortBy:      c.Query("sort"),
		}
		f.MinPrice, _ = strconv.Atoi(c.Query("minPrice"))
		f.MaxPrice, _ = strconv.Atoi(c.Query("maxPrice"))

		products, err := cfg.Catalog.List(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products})
	})

	r.GET("/products/popular", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
		products, err := cfg.Catalog.Popular(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products})
	})

	r.GET("/products/:id", func(c *gin.Context) {
		p, err := cfg.Catalog.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": p})
	})

	r.GET("/products/:id/related", func(c *gin.Context) {
		ctx := c.Request.Context()
		p, err := cfg.Catalog.Get(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
		related, err := cfg.Catalog.Related(ctx, p.ID, p.Category, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": related})
	})

	cartStore := func(c *gin.Context) *cart.Store {
		id, s := cfg.Carts.Get(c.GetHeader(CartIDHeader))
		c.Header(CartIDHeader, id)
		return s
	}

	cartView := func(s *cart.Store) gin.H {
		return gin.H{"items": s.Lines(), "total": s.Total(), "count": s.Count()}
	}

	r.GET("/cart", func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(cartStore(c)))
	})

	r.POST("/cart/items", func(c *gin.Context) {
		var req validation.AddItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		s := cartStore(c)
		p, err := cfg.Catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog_unavailable"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		change := s.Add(*p, req.UnitQuantity(), req.SelectedSize, req.IsEggless)
		c.JSON(http.StatusOK, gin.H{"change": change, "cart": cartView(s)})
	})

	r.PATCH("/cart/items/quantity", func(c *gin.Context) {
		var req validation.UpdateQuantityRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		s := cartStore(c)
		change := s.UpdateQuantity(req.ProductID, req.Quantity, req.SelectedSize)
		c.JSON(http.StatusOK, gin.H{"change": change, "cart": cartView(s)})
	})

	r.PATCH("/cart/items/eggless", func(c *gin.Context) {
		var req validation.UpdateEgglessRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		s := cartStore(c)
		change := s.UpdateEggless(req.ProductID, req.IsEggless, req.SelectedSize)
		c.JSON(http.StatusOK, gin.H{"change": change, "cart": cartView(s)})
	})

	r.DELETE("/cart/items", func(c *gin.Context) {
		productID := c.Query("productId")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_product_id"})
			return
		}
		size, _ := strconv.ParseFloat(c.Query("selectedSize"), 64)
		s := cartStore(c)
		change := s.Remove(productID, size)
		c.JSON(http.StatusOK, gin.H{"change": change, "cart": cartView(s)})
	})

	r.DELETE("/cart", func(c *gin.Context) {
		s := cartStore(c)
		s.Clear()
		c.JSON(http.StatusOK, cartView(s))
	})

	// upsell prompt: suggest the category the cart is missing
	r.GET("/cart/upsell", func(c *gin.Context) {
		s := cartStore(c)
		suggest := ""
		switch {
		case s.HasCategory(catalog.CategoryCakes) && !s.HasCategory(catalog.CategoryDecoration):
			suggest = catalog.CategoryDecoration
		case s.HasCategory(catalog.CategoryDecoration) && !s.HasCategory(catalog.CategoryCakes):
			suggest = catalog.CategoryCakes
		}
		c.JSON(http.StatusOK, gin.H{"suggest": suggest})
	})

	r.POST("/checkout", func(c *gin.Context) {
		var form checkout.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}

		s := cartStore(c)
		lines := s.Lines()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty_cart"})
			return
		}

		normalized, fieldErrs := cfg.Validator.Validate(form)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": fieldErrs})
			return
		}

		total := s.Total()
		message := cfg.Composer.OrderMessage(lines, whatsapp.DetailsFromForm(normalized), total)
		link := cfg.Composer.Link(message)

		// the order leaves through WhatsApp; the cart's job is done
		s.Clear()

		logger.Info("checkout submitted",
			zap.String("customer", normalized.FullName),
			zap.Int("total", total),
			zap.Int("items", len(lines)))

		c.JSON(http.StatusOK, gin.H{
			"message":     message,
			"whatsappUrl": link,
			"total":       total,
		})
	})

	r.GET("/track", func(c *gin.Context) {
		q := c.Query("q")
		if strings.TrimSpace(q) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_query"})
			return
		}
		order, err := cfg.Orders.FindByNumberOrPhone(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup_failed"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": trackNotFoundMsg})
			return
		}
		masked := *order
		masked.CustomerName = maskName(order.CustomerName)
		c.JSON(http.StatusOK, gin.H{"data": masked})
	})

	r.POST("/custom-order", func(c *gin.Context) {
		var req validation.CustomOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		message := cfg.Composer.CustomOrderMessage(whatsapp.CustomInquiry{
			Name:          req.Name,
			Phone:         req.Phone,
			Message:       req.Message,
			PreferredDate: req.PreferredDate,
			HasImage:      req.HasImage,
		})
		c.JSON(http.StatusOK, gin.H{
			"message":     message,
			"whatsappUrl": cfg.Composer.Link(message),
		})
	})
}

// maskName hides most of a customer's name on the public tracking page.
func maskName(name string) string {
	if len(name) <= 5 {
		if len(name) <= 2 {
			return name + "***"
		}
		return name[:2] + "***"
	}
	return name[:5] + "***"
}

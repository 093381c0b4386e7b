package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blackberrycakes/storefront/internal/cart"
	"github.com/blackberrycakes/storefront/internal/catalog"
	"github.com/blackberrycakes/storefront/internal/checkout"
	"github.com/blackberrycakes/storefront/internal/config"
	"github.com/blackberrycakes/storefront/internal/handlers"
	"github.com/blackberrycakes/storefront/internal/orders"
	"github.com/blackberrycakes/storefront/internal/storage"
	"github.com/blackberrycakes/storefront/internal/whatsapp"
)

func setupRouter(sf handlers.StorefrontConfig, admin handlers.AdminConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterStorefrontRoutes(r, sf)
	handlers.RegisterAdminRoutes(r, admin)

	return r
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	fileStore, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open data dir", zap.Error(err))
	}

	delay := cfg.MockDelay()

	// the storefront and the admin panel each get their own catalog copy;
	// admin edits never flow back into the storefront's collection
	storeCatalog := catalog.NewRepository(catalog.Seed(), delay)
	adminCatalog := catalog.NewRepository(catalog.Seed(), delay)

	orderStore := orders.NewStore(orders.SeedOrders(), delay)
	customStore := orders.NewCustomStore(orders.SeedCustomOrders(), delay)

	carts := cart.NewRegistry(func(id string) *cart.Store {
		p := cart.NewKeyedStoragePersister(fileStore, cart.StorageKey+"-"+id, logger)
		return cart.NewStoreFromPersister(p)
	})

	composer := whatsapp.NewComposer(whatsapp.Config{
		BusinessName: cfg.Business.Name,
		Number:       cfg.Business.WhatsAppNumber,
		Currency:     cfg.Business.Currency,
	})

	sf := handlers.StorefrontConfig{
		Catalog:   storeCatalog,
		Carts:     carts,
		Orders:    orderStore,
		Validator: checkout.NewValidator(),
		Composer:  composer,
		Logger:    logger,
	}
	admin := handlers.AdminConfig{
		Catalog:      adminCatalog,
		Orders:       orderStore,
		CustomOrders: customStore,
		Logger:       logger,
	}

	r := setupRouter(sf, admin)

	logger.Info("storefront listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

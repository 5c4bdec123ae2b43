package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/Goriishankar/Dolchem-backend/configs"
	authController "github.com/Goriishankar/Dolchem-backend/controllers/auth"
	bannerController "github.com/Goriishankar/Dolchem-backend/controllers/banners"
	cartController "github.com/Goriishankar/Dolchem-backend/controllers/cart"
	categoryController "github.com/Goriishankar/Dolchem-backend/controllers/categories"
	deviceController "github.com/Goriishankar/Dolchem-backend/controllers/devices"
	metricsController "github.com/Goriishankar/Dolchem-backend/controllers/metrics"
	notificationController "github.com/Goriishankar/Dolchem-backend/controllers/notifications"
	orderController "github.com/Goriishankar/Dolchem-backend/controllers/orders"
	productController "github.com/Goriishankar/Dolchem-backend/controllers/products"
	profileController "github.com/Goriishankar/Dolchem-backend/controllers/profile"
	saleBannerController "github.com/Goriishankar/Dolchem-backend/controllers/salebanners"
	statsController "github.com/Goriishankar/Dolchem-backend/controllers/stats"
	wishlistController "github.com/Goriishankar/Dolchem-backend/controllers/wishlist"
	"github.com/Goriishankar/Dolchem-backend/middlewares"
	"github.com/Goriishankar/Dolchem-backend/push"
	"github.com/Goriishankar/Dolchem-backend/realtime"
	"github.com/Goriishankar/Dolchem-backend/routes"
	"github.com/Goriishankar/Dolchem-backend/storage"
)

func main() {
	configs.LoadEnv()
	log := configs.Logger()
	defer log.Sync()

	client := configs.ConnectDB(configs.EnvMongoURI(), log)
	db := client.Database(configs.EnvDBName())

	hub := realtime.NewHub(log)
	sender := push.NewSender(context.Background(), configs.EnvFirebaseCredentials(), log)
	uploads := storage.NewStore(configs.EnvUploadsDir(), log)

	secret := configs.EnvJWTSecret()
	protect := middlewares.Protect(secret)
	protectAdmin := middlewares.ProtectAdmin(secret)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/uploads", uploads.Root)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", hub.Handler())

	routes.AuthRoutes(app, authController.New(db, hub, log, secret), protectAdmin)
	routes.CategoryRoutes(app, categoryController.New(db, uploads, log))
	routes.ProductRoutes(app, productController.New(db, uploads, hub, sender, log))
	routes.BannerRoutes(app, bannerController.New(db, uploads, log))
	routes.SaleBannerRoutes(app, saleBannerController.New(db, uploads, log))
	routes.CartRoutes(app, cartController.New(db, log), protect)
	routes.OrderRoutes(app, orderController.New(db, hub, log), protect)
	routes.WishlistRoutes(app, wishlistController.New(db, log), protect)
	routes.ProfileRoutes(app, profileController.New(db, uploads, log), protect)
	routes.NotificationRoutes(app, notificationController.New(db, log))
	routes.DeviceRoutes(app, deviceController.New(db, log))
	routes.StatsRoutes(app, statsController.New(db, log), protectAdmin)
	routes.MetricsRoutes(app, metricsController.New(db, log))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error("mongo disconnect failed", zap.Error(err))
	}
}

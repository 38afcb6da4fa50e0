package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/configs"
	"github.com/vasandree/hits-docker-practice/controllers"
	"github.com/vasandree/hits-docker-practice/middlewares"
	"github.com/vasandree/hits-docker-practice/repository"
	"github.com/vasandree/hits-docker-practice/services"
	"github.com/vasandree/hits-docker-practice/ws"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *configs.Config,
	cartStore *repository.CartRepository,
	collector *services.AnalyticsCollector,
	hub *ws.OrderHub,
) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addrRepo := repository.NewAddressRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(cartStore, menuRepo)
	pricingSvc := services.NewPricingService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartStore, userRepo, addrRepo, pricingSvc,
		cfg.MinDeliveryTime, cfg.DeliveryTimeStep)
	orderSvc.CartSvc = cartSvc
	orderSvc.Events = hub
	analyticsSvc := services.NewAnalyticsService(userRepo, menuRepo, orderRepo, collector)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, userRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	mgmtCtrl := controllers.NewOrdersManagementController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	addrCtrl := controllers.NewAddressController(addrRepo)
	analyticsCtrl := controllers.NewAnalyticsController(collector, analyticsSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Menu (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Cart
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("", orderCtrl.Past)
		orders.GET("/create", orderCtrl.CreateView)
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Info)
	}

	// Addresses
	addrs := r.Group("/addresses", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		addrs.GET("", addrCtrl.List)
		addrs.POST("", addrCtrl.Create)
		addrs.PUT("/:id", addrCtrl.Update)
		addrs.DELETE("/:id", addrCtrl.Delete)
	}

	// Operator worklist (admin only)
	mgmt := r.Group("/management", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		mgmt.GET("/orders", mgmtCtrl.Index)
		mgmt.PATCH("/orders/:id", mgmtCtrl.Edit)
		mgmt.POST("/menu", menuCtrl.Create)
		mgmt.DELETE("/menu/:id", menuCtrl.Delete)
	}

	// Live order feed (admin only)
	r.GET("/ws/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)

	// Analytics (admin only)
	analytics := r.Group("/analytics", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		analytics.GET("/summary", analyticsCtrl.Summary)
		analytics.GET("/usage", analyticsCtrl.Usage)
		analytics.GET("/errors", analyticsCtrl.Errors)
	}
}

package routes

import (
	"log/slog"

	"github.com/surukutlaManoj/Food-Delivery/configs"
	"github.com/surukutlaManoj/Food-Delivery/controllers"
	"github.com/surukutlaManoj/Food-Delivery/middlewares"
	"github.com/surukutlaManoj/Food-Delivery/repository"
	"github.com/surukutlaManoj/Food-Delivery/services"
	"github.com/surukutlaManoj/Food-Delivery/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, log *slog.Logger, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(orderRepo, restRepo, hub, services.OrderConfig{
		TaxRate:            cfg.TaxRate,
		PaymentSuccessRate: cfg.PaymentSuccessRate,
	})

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	cartCtrl := controllers.NewCartController(cartRepo, log)
	orderWS := ws.NewOrderSocket(hub, orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public browsing
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Orders (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe) // ?status=&page=&limit=
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/payment", orderCtrl.Pay)
		u.PUT("/orders/:id/cancel", orderCtrl.Cancel)
		u.GET("/orders/:id/track", orderCtrl.Track)
	}

	// Cart (user)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PUT("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.PUT("/restaurant", cartCtrl.SetRestaurant)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Live order updates; token accepted via query for browser websockets
	r.GET("/ws/orders/:id", middlewares.AuthMiddleware(cfg.JWTSecret), orderWS.Handle)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/restaurants", restCtrl.Create)
		admin.PATCH("/restaurants/:id", restCtrl.Update)
		admin.DELETE("/restaurants/:id", restCtrl.Deactivate)
		admin.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
	}
}

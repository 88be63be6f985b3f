package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/configs"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/controllers"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/middlewares"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/repository"
	"github.com/Rorogogogo/Mr.R-Sushi-sub000/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true, "message": "ok", "data": nil}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	pricing := services.NewPricing(services.DefaultSurchargeTable())
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, pricing)
	notifier := &services.LogNotifier{ShopName: cfg.ShopName}
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, pricing, notifier)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	menu := r.Group("/menu")
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/featured", menuCtrl.ListFeatured)
		menu.GET("/category/:c", menuCtrl.ListByCategory)
		menu.GET("/:id", menuCtrl.Get)
	}

	cart := r.Group("/cart")
	{
		cart.POST("", cartCtrl.Add)
		cart.GET("/:session", cartCtrl.Get)
		cart.PUT("/:lineId", cartCtrl.UpdateQty)
		cart.DELETE("/:session", cartCtrl.Clear)
		cart.DELETE("/item/:lineId", cartCtrl.RemoveLine)
		cart.POST("/:session/checkout", cartCtrl.Checkout)
	}

	order := r.Group("/order")
	{
		order.GET("", orderCtrl.List)
		order.GET("/:id", orderCtrl.Detail)
		order.POST("", orderCtrl.Create)
		order.PUT("/:id/status", orderCtrl.SetStatus)
	}
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/korbahq/korba-app/controllers"
	"github.com/korbahq/korba-app/middlewares"
	"github.com/korbahq/korba-app/services"
	"github.com/korbahq/korba-app/store"
)

// Deps bundles the shared state the controllers are built on.
type Deps struct {
	Carts    *store.CartManager
	Sessions *store.SessionStore
	Chat     *services.ChatService
}

func SetupRouter(db *gorm.DB, deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db, deps.Carts)
	userCtrl := controllers.NewUserController(deps.Sessions)
	orderCtrl := controllers.NewOrderController(db)
	checkoutCtrl := controllers.NewCheckoutController(deps.Carts)
	reservationCtrl := controllers.NewReservationController()
	chatCtrl := controllers.NewChatController(deps.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Catalog
		api.GET("/menus", menuCtrl.GetAllMenus)
		api.GET("/menus/categories", menuCtrl.GetCategories)
		api.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

		// Carts
		api.POST("/carts", cartCtrl.CreateCart)
		api.GET("/carts/:cart_id", cartCtrl.GetCart)
		api.POST("/carts/:cart_id/items", cartCtrl.AddItem)
		api.PATCH("/carts/:cart_id/items/:item_id", cartCtrl.UpdateQuantity)
		api.DELETE("/carts/:cart_id/items/:item_id", cartCtrl.RemoveItem)
		api.DELETE("/carts/:cart_id", cartCtrl.ClearCart)

		// Checkout and reservations
		api.POST("/checkout", checkoutCtrl.Submit)
		api.POST("/reservations", reservationCtrl.Create)

		// Auth
		auth := api.Group("/auth")
		auth.Use(middlewares.NewStrictRateLimiter())
		{
			auth.POST("/login", userCtrl.Login)
			auth.POST("/signup", userCtrl.Signup)
		}
		api.POST("/auth/logout", middlewares.AuthMiddleware(), userCtrl.Logout)

		// Dashboard
		protected := api.Group("")
		protected.Use(middlewares.AuthMiddleware())
		{
			protected.GET("/profile", userCtrl.GetProfile)
			protected.PATCH("/profile", userCtrl.UpdateProfile)
			protected.GET("/orders", orderCtrl.GetAllOrders)
		}

		// Concierge chat
		api.POST("/chat", chatCtrl.OpenConversation)
		api.GET("/chat/:chat_id", chatCtrl.GetTranscript)
		api.POST("/chat/:chat_id/messages", chatCtrl.SendMessage)
		api.DELETE("/chat/:chat_id", chatCtrl.CloseConversation)
	}

	return r
}

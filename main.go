package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/korbahq/korba-app/config"
	"github.com/korbahq/korba-app/database"
	"github.com/korbahq/korba-app/middlewares"
	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/router"
	"github.com/korbahq/korba-app/services"
	"github.com/korbahq/korba-app/store"
	"github.com/korbahq/korba-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedMenus(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed menu catalog: %v", err)
	}
	if err := database.SeedOrders(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed order history: %v", err)
	}
	utils.InfoLogger.Printf("Catalog ready: %d items in %d categories", len(models.MenuData), len(models.Categories))

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := store.NewSessionStore(database.NewSessionRecordStorage(db))
	sessions.Restore()
	if user := sessions.Current(); user != nil {
		utils.InfoLogger.Printf("Restored session for %s", user.Email)
	}

	var provider services.ChatProvider
	provider, err = services.NewOpenAICompatProvider(config.LoadChatConfig())
	if err != nil {
		// The concierge degrades to its fallback reply without a provider.
		utils.ErrorLogger.Printf("Chat provider unavailable: %v", err)
		provider = services.UnavailableProvider{}
	}
	chat := services.NewChatService(provider, models.MenuData)

	deps := router.Deps{
		Carts:    store.NewCartManager(),
		Sessions: sessions,
		Chat:     chat,
	}

	r := router.SetupRouter(db, deps)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

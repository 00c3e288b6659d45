package main

import (
	"log"
	"net/http"
	"time"

	"pharmacy-server/config"
	"pharmacy-server/database"
	"pharmacy-server/handlers"
	"pharmacy-server/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	// Initialize Cloudinary (optional, only used for custom product images)
	if config.AppConfig.CloudinaryURL != "" {
		if err := services.InitializeCloudinary(config.AppConfig.CloudinaryURL); err != nil {
			log.Printf("ERROR: Failed to initialize Cloudinary: %v", err)
		}
	}

	// Initialize the AI provider client
	if err := services.InitializeLLM(
		config.AppConfig.OpenAIAPIKey,
		config.AppConfig.OpenAIBaseURL,
		config.AppConfig.ChatModel,
		config.AppConfig.TTSModel,
	); err != nil {
		log.Fatal("Failed to initialize AI provider:", err)
	}

	var completer services.ChatCompleter
	if services.LLM.Configured() {
		completer = services.LLM.Client
	}

	searchEngine := services.NewSearchEngine(services.NewAISearcher(completer, config.AppConfig.ChatModel))
	translator := services.NewTranslator(completer, config.AppConfig.ChatModel)
	chatService := services.NewChatService(completer, config.AppConfig.ChatModel, searchEngine, services.NewSQLChatStore(), translator)
	wishlistService := services.NewWishlistService(services.NewSQLWishlistStore())
	speechService := services.NewSpeechService(services.LLM.Client, config.AppConfig.TTSModel)

	if err := chatService.SubscribeAskEvents(); err != nil {
		log.Fatal("Failed to subscribe assistant events:", err)
	}

	// Start the reminder scheduler
	services.NewReminderScheduler(config.AppConfig.ReminderPollInterval).Start()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Client-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "healthy",
			"message":      "Pharmacy server is running",
			"ai_available": services.LLM.Configured(),
			"timestamp":    time.Now().Unix(),
		})
	})

	// Initialize handlers
	handlers.InitializeHandlers(db, chatService, searchEngine, wishlistService, speechService)

	// API routes
	api := router.Group("/api/v1")
	{
		// Product routes
		products := api.Group("/products")
		{
			products.GET("/", handlers.GetProducts)
			products.GET("/:id", handlers.GetProduct)
			products.POST("/:id/ask", handlers.AskAboutProduct)
		}

		api.GET("/search", handlers.SearchProducts)

		// Wishlist routes
		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("/", handlers.GetWishlist)
			wishlist.POST("/toggle", handlers.ToggleWishlist)
		}

		// Assistant routes
		chat := api.Group("/chat")
		{
			chat.GET("/", handlers.GetChat)
			chat.POST("/open", handlers.OpenChat)
			chat.POST("/close", handlers.CloseChat)
			chat.POST("/messages", handlers.SendChatMessage)
			chat.DELETE("/messages", handlers.ClearChat)
			chat.POST("/messages/:id/translate", handlers.TranslateChatMessage)
			chat.POST("/messages/:id/revert", handlers.RevertChatMessage)
			chat.POST("/speech", handlers.SynthesizeSpeech)
		}
		api.POST("/assistant/ask", handlers.AskAssistant)

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.GET("/", handlers.GetReminders)
			reminders.POST("/", handlers.CreateReminder)
			reminders.DELETE("/:id", handlers.DeleteReminder)
			reminders.GET("/notifications", handlers.GetReminderNotifications)
		}

		// Consent routes
		api.GET("/consent", handlers.GetConsent)
		api.PUT("/consent", handlers.SetConsent)
	}

	log.Printf("Pharmacy server starting on port %s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, c.Handler(router)))
}

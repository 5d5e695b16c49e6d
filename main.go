package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"lapak/internal/handlers"
	"lapak/internal/repositories"
	"lapak/internal/services"
	"lapak/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize RabbitMQ Client (optional) ---
	// Event publishing is best-effort: with no broker configured the
	// services simply skip it.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, entity events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	} else {
		log.Println("RABBITMQ_URL not set, entity events disabled")
	}

	// --- Initialize Repositories ---
	// Every collection starts empty; nothing survives a restart.
	userRepo := repositories.NewInMemoryUserRepository()
	orderRepo := repositories.NewInMemoryOrderRepository()
	productRepo := repositories.NewInMemoryProductRepository()
	categoryRepo := repositories.NewInMemoryCategoryRepository()
	contactRepo := repositories.NewInMemoryContactRepository()
	tagRepo := repositories.NewInMemoryTagRepository()

	// --- Initialize Services ---
	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(orderRepo, events)
	productService := services.NewProductService(productRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	contactService := services.NewContactService(contactRepo, events)
	tagService := services.NewTagService(tagRepo)

	// --- Initialize Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	contactHandler := handlers.NewContactHandler(contactService)
	tagHandler := handlers.NewTagHandler(tagService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	userHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	contactHandler.RegisterRoutes(apiV1)
	tagHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for entity events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received %s event (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/krustykrab/restaurant-api/docs" // Import generated docs
	"github.com/krustykrab/restaurant-api/internal/auth"
	"github.com/krustykrab/restaurant-api/internal/config"
	"github.com/krustykrab/restaurant-api/internal/controllers"
	"github.com/krustykrab/restaurant-api/internal/database"
	"github.com/krustykrab/restaurant-api/internal/middleware"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/krustykrab/restaurant-api/internal/services"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                   *gorm.DB
	orderService         services.OrderService
	customerService      services.CustomerService
	menuItemService      services.MenuItemService
	employeeService      services.EmployeeService
	restaurantService    services.RestaurantService
	userService          services.UserService
	clientService        services.ClientService
	oauthService         *auth.OAuthService
	orderController      controllers.OrderController
	customerController   controllers.CustomerController
	menuItemController   controllers.MenuItemController
	employeeController   controllers.EmployeeController
	restaurantController controllers.RestaurantController
	authController       *controllers.AuthController
	clientController     *controllers.ClientController
	configuration        *config.Config
)

// @title Krusty Krab Restaurant API
// @version 1.0
// @description Restaurant management API: employees, customers, menu items, orders, and the restaurant profile
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	resolver := services.NewReferenceResolver(db)
	orderService = services.NewOrderService(db, resolver)
	customerService = services.NewCustomerService(db)
	menuItemService = services.NewMenuItemService(db)
	employeeService = services.NewEmployeeService(db)
	restaurantService = services.NewRestaurantService(db)
	userService = services.NewUserService(db)
	clientService = services.NewClientService(db)
	oauthService = auth.NewOAuthService(db, configuration.JWTSecret)

	orderController = controllers.NewOrderController(orderService)
	customerController = controllers.NewCustomerController(customerService)
	menuItemController = controllers.NewMenuItemController(menuItemService)
	employeeController = controllers.NewEmployeeController(employeeService)
	restaurantController = controllers.NewRestaurantController(restaurantService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	clientController = controllers.NewClientController(clientService)

	// Initialize Gin router
	router := setupRouter()

	// Wrap the router with CORS for the SPA frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: configuration.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	// Start the server
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema,
// and seeds sample data on an empty store
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(
		&models.Customer{},
		&models.MenuItem{},
		&models.Employee{},
		&models.Order{},
		&models.RestaurantProfile{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthCode{},
		&models.OAuthToken{},
	)
	checkPanicErr(err)

	// Seed only if empty
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with sample Krusty Krab data. Order totals
// go through the pricing engine rather than being written as literals.
func seedDatabase() {
	db.Create(&models.RestaurantProfile{
		Location:     "Bikini Bottom",
		Phone:        "555-1234",
		OpeningHours: "9:00 AM - 9:00 PM",
	})

	employees := []models.Employee{
		{EmployeeID: 101, Name: "SpongeBob SquarePants", Position: "Chef", Salary: 3000},
		{EmployeeID: 102, Name: "Squidward Tentacles", Position: "Cashier", Salary: 2500},
		{EmployeeID: 103, Name: "Patrick Star", Position: "Janitor", Salary: 2000},
	}
	for _, employee := range employees {
		db.Create(&employee)
	}

	menuItems := []models.MenuItem{
		{Name: "Krabby Patty", Description: "Classic burger", Price: 5.99, Ingredients: []string{"Bun", "Patty", "Lettuce", "Cheese"}},
		{Name: "Kelp Fries", Description: "Crispy kelp fries", Price: 2.99, Ingredients: []string{"Kelp", "Salt", "Oil"}},
		{Name: "Coral Bits", Description: "Small crunchy snacks", Price: 1.99, Ingredients: []string{"Coral", "Spices"}},
	}
	byName := make(map[string]models.MenuItem, len(menuItems))
	for _, item := range menuItems {
		db.Create(&item)
		byName[item.Name] = item
	}

	customers := []models.Customer{
		{CustomerID: 201, Name: "Sandy Cheeks", ContactInfo: "sandy@bikini.com"},
		{CustomerID: 202, Name: "Mr. Krabs", ContactInfo: "krabs@bikini.com"},
	}
	for _, customer := range customers {
		db.Create(&customer)
	}

	orders := []struct {
		orderID    int
		customerID int
		names      []string
		quantities []int
		date       time.Time
	}{
		{301, 201, []string{"Krabby Patty", "Kelp Fries"}, []int{2, 1}, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)},
		{302, 202, []string{"Coral Bits"}, []int{3}, time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, o := range orders {
		total, err := services.OrderTotal(byName, o.names, o.quantities)
		if err != nil {
			log.WithError(err).Warn("Skipping seed order with unresolvable items")
			continue
		}
		db.Create(&models.Order{
			OrderID:     o.orderID,
			CustomerID:  o.customerID,
			MenuItemIDs: o.names,
			Quantity:    o.quantities,
			TotalPrice:  total,
			Date:        o.date,
		})
	}

	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// OAuth2 endpoints
	router.POST("/oauth/token", oauthService.HandleToken)
	router.GET("/oauth/authorize", oauthService.HandleAuthorize)

	v1 := router.Group("/api/v1")
	{
		// Account endpoints
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		publicApi := v1.Group("/public")
		{
			publicApi.GET("/orders", orderController.GetAllOrders)
			publicApi.GET("/orders/:id", orderController.GetOrderByID)
			publicApi.GET("/customers", customerController.GetAllCustomers)
			publicApi.GET("/customers/:id", customerController.GetCustomerByID)
			publicApi.GET("/menu-items", menuItemController.GetAllMenuItems)
			publicApi.GET("/menu-items/:id", menuItemController.GetMenuItemByID)
			publicApi.GET("/employees", employeeController.GetAllEmployees)
			publicApi.GET("/employees/:id", employeeController.GetEmployeeByID)
			publicApi.GET("/restaurant", restaurantController.GetProfiles)
			publicApi.GET("/restaurant/:id", restaurantController.GetProfileByID)
		}

		// Mutations require a valid bearer token. Staff can manage orders,
		// customers, and menu items; employee records, the restaurant
		// profile, and OAuth clients are admin-only.
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth())
		{
			staffApi := protectedApi.Group("")
			staffApi.Use(middleware.RequireRole("staff"))
			{
				staffApi.POST("/orders", orderController.CreateOrder)
				staffApi.PATCH("/orders/:id", orderController.UpdateOrder)
				staffApi.DELETE("/orders/:id", orderController.DeleteOrder)
				staffApi.POST("/customers", customerController.CreateCustomer)
				staffApi.PATCH("/customers/:id", customerController.UpdateCustomer)
				staffApi.DELETE("/customers/:id", customerController.DeleteCustomer)
				staffApi.POST("/menu-items", menuItemController.CreateMenuItem)
				staffApi.PATCH("/menu-items/:id", menuItemController.UpdateMenuItem)
				staffApi.DELETE("/menu-items/:id", menuItemController.DeleteMenuItem)
			}

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.POST("/employees", employeeController.CreateEmployee)
				adminApi.PATCH("/employees/:id", employeeController.UpdateEmployee)
				adminApi.DELETE("/employees/:id", employeeController.DeleteEmployee)
				adminApi.POST("/restaurant", restaurantController.CreateProfile)
				adminApi.PATCH("/restaurant/:id", restaurantController.UpdateProfile)
				adminApi.DELETE("/restaurant/:id", restaurantController.DeleteProfile)
				adminApi.POST("/clients", clientController.CreateClient)
				adminApi.GET("/clients", clientController.ListClients)
				adminApi.DELETE("/clients/:id", clientController.DeleteClient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-api",
	})
}

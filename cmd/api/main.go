package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/sefazor/qrtrack-backend/internal/config"
	"github.com/sefazor/qrtrack-backend/internal/controller"
	"github.com/sefazor/qrtrack-backend/internal/handler"
	"github.com/sefazor/qrtrack-backend/internal/middleware"
	"github.com/sefazor/qrtrack-backend/internal/repository"
	"github.com/sefazor/qrtrack-backend/internal/service"
	"github.com/sefazor/qrtrack-backend/pkg/database"
	jwtPkg "github.com/sefazor/qrtrack-backend/pkg/jwt"
	"github.com/sefazor/qrtrack-backend/pkg/logger"
	qrPkg "github.com/sefazor/qrtrack-backend/pkg/qrcode"
	"github.com/sefazor/qrtrack-backend/pkg/utils"
)

func main() {
	// Load .env; a missing file is fine in containerized deployments.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	log := logger.Get(cfg.LogLevel)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Storage: in-memory by default, Postgres when DATABASE_URL is set.
	var userRepo repository.UserRepository
	var qrRepo repository.QrCodeRepository
	if cfg.DatabaseURL != "" {
		db, err := database.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalw("failed to initialize database", "error", err)
		}
		userRepo = repository.NewPostgresUserRepository(db)
		qrRepo = repository.NewPostgresQrCodeRepository(db)
		log.Info("using Postgres storage")
	} else {
		userRepo = repository.NewMemoryUserRepository()
		qrRepo = repository.NewMemoryQrCodeRepository()
		log.Info("using in-memory storage, records are lost on restart")
	}

	// Auth plumbing
	jwtManager := jwtPkg.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	var strategy middleware.TokenStrategy
	if cfg.AuthMode == config.AuthModeBearer {
		strategy = &middleware.BearerStrategy{}
	} else {
		strategy = &middleware.CookieStrategy{
			Secure:   cfg.CookieSecure,
			SameSite: cfg.CookieSameSite,
			TTL:      cfg.TokenTTL,
		}
	}

	// Services
	renderer := qrPkg.NewRenderer(log)
	generator := service.NewShortCodeGenerator(qrRepo)
	authService := service.NewAuthService(userRepo, jwtManager)
	qrService := service.NewQrCodeService(qrRepo, generator, renderer, log)

	// Controllers
	authController := controller.NewAuthController(authService)
	qrController := controller.NewQrCodeController(qrService)

	// Handlers
	validator := utils.NewValidator()
	authHandler := handler.NewAuthHandler(authController, strategy, validator)
	qrHandler := handler.NewQrCodeHandler(qrController, validator, log)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	// Public QR routes (no auth by design, must stay before the middleware)
	api.Get("/qr-codes/:id/image", qrHandler.Image)
	api.Get("/r/:shortCode", qrHandler.Redirect)

	// Protected routes
	api.Use(middleware.AuthMiddleware(jwtManager, strategy))
	{
		api.Get("/user", authHandler.CurrentUser)
		api.Post("/qr-codes", qrHandler.Create)
		api.Get("/qr-codes", qrHandler.List)
	}

	log.Infow("starting server", "port", cfg.Port, "authMode", cfg.AuthMode)
	log.Fatal(app.Listen(":" + cfg.Port))
}

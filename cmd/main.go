package main

import (
	"net/http"
	"os"
	"time"

	"meallink/api/handler"
	apiMiddleware "meallink/api/middleware"
	"meallink/api/routes"
	"meallink/config"
	"meallink/internal/entity"
	"meallink/internal/repository"
	"meallink/internal/service"
	"meallink/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("connect database")
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.UserRole{},
		&entity.OTPChallenge{},
		&entity.Orphanage{},
		&entity.Donation{},
	); err != nil {
		logger.WithError(err).Fatal("migrate schema")
	}

	validate := validator.New()

	tokenManager := utils.TokenManager{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.AccessTokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPChallengeRepository(db)
	orphanageRepo := repository.NewOrphanageRepository(db)
	donationRepo := repository.NewDonationRepository(db)

	otpManager := service.NewOTPManager(
		otpRepo,
		service.BcryptSecretHasher{},
		service.RealClock{},
		service.OTPConfig{Length: cfg.OTPLength, TTL: cfg.OTPTTL},
	)

	var sender service.OTPSender
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFrom != "" {
		sender = service.NewTwilioOTPSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	} else {
		logger.Warn("twilio not configured, otp codes are logged")
		sender = service.LogOTPSender{Logger: logger}
	}

	authService := service.NewAuthService(
		userRepo,
		orphanageRepo,
		otpManager,
		sender,
		service.JWTAccessIssuer{Manager: &tokenManager},
		service.AuthConfig{
			AccessTokenTTL: cfg.AccessTokenTTL,
			DebugReturnOTP: cfg.OTPDebugReturn,
		},
	)
	userService := service.NewUserService(userRepo)
	donationService := service.NewDonationService(donationRepo, orphanageRepo)
	orphanageService := service.NewOrphanageService(orphanageRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	donationHandler := handler.NewDonationHandler(donationService, validate)
	orphanageHandler := handler.NewOrphanageHandler(orphanageService, donationService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &tokenManager, Users: userRepo}
	router := routes.NewRouter(app, authHandler, userHandler, donationHandler, orphanageHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

package main

import (
	"net/http"
	"os"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/api/handler"
	apiMiddleware "github.com/josedavimartini-ship-it/publimicro-sub003/api/middleware"
	"github.com/josedavimartini-ship-it/publimicro-sub003/api/routes"
	"github.com/josedavimartini-ship-it/publimicro-sub003/config"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/brand"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/service"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := config.OpenDatabase(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}

	jwtManager := utils.JWTManager{
		Secret:         []byte(cfg.JWTSecret),
		Issuer:         cfg.JWTIssuer,
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	listingRepo := repository.NewListingRepository(db)
	contactRepo := repository.NewContactRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	codeRepo := repository.NewAuthorizationCodeRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)

	brands := brand.Default()

	var emailSender service.EmailSender
	if cfg.ResendAPIKey != "" && cfg.EmailFrom != "" && cfg.LeadInbox != "" {
		emailSender = service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom, cfg.LeadInbox)
	}

	var gateway service.PaymentGateway
	if cfg.MercadoPagoAccessToken != "" {
		gateway, err = service.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			logger.WithError(err).Fatal("payment gateway init failed")
		}
	} else {
		logger.Warn("MERCADOPAGO_ACCESS_TOKEN not set; checkout disabled")
		gateway = service.DisabledPaymentGateway{}
	}

	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		service.BcryptPasswordHasher{},
		service.JWTAccessIssuer{Manager: &jwtManager},
		service.RealClock{},
		service.AuthConfig{
			AccessTokenTTL: cfg.AccessTokenTTL,
			SessionTTL:     cfg.SessionTTL,
		},
	)
	listingService := service.NewListingService(listingRepo, brands)
	leadService := service.NewLeadService(contactRepo, proposalRepo, emailSender, logger)
	visitService := service.NewVisitService(visitRepo, listingRepo)
	authorizationService := service.NewAuthorizationService(codeRepo, visitRepo)
	checkoutService := service.NewCheckoutService(gateway, logger)
	verificationService := service.NewVerificationService(verificationRepo)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
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
	app.Use(apiMiddleware.LocaleRedirectWithDefault(cfg.DefaultLocale))

	app.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager, Sessions: sessionRepo}
	router := routes.NewRouter(
		app,
		handler.NewAuthHandler(authService, validate),
		handler.NewListingHandler(listingService, validate),
		handler.NewLeadHandler(leadService, validate),
		handler.NewVisitHandler(visitService, validate),
		handler.NewAuthorizationHandler(authorizationService, validate),
		handler.NewCheckoutHandler(checkoutService, validate),
		handler.NewVerificationHandler(verificationService, validate),
		handler.NewBrandHandler(brands),
		authMiddleware,
	)
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

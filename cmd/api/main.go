package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"tongavip/internal/config"
	"tongavip/internal/middleware"
	"tongavip/internal/modules/admin"
	"tongavip/internal/modules/booking"
	"tongavip/internal/modules/catalog"
	"tongavip/internal/modules/concierge"
	"tongavip/internal/modules/notification"
	"tongavip/internal/modules/payment"
	jwtsvc "tongavip/internal/pkg/jwt"
	"tongavip/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Admin.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cat := catalog.Default()
	store := repository.NewBookingStore(cfg.Store.BookingsFile)

	mailer := notification.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.Mail.FromName,
		cfg.Mail.FromAddress,
	)
	notifier := notification.NewService(mailer, cfg.Mail.To, sugar)

	paymentService := payment.NewService(selectProcessor(cfg, sugar), cfg.Payment.Currency, sugar)
	paymentHandler := payment.NewHandler(paymentService, sugar)

	bookingService := booking.NewService(store, notifier, sugar)
	bookingHandler := booking.NewHandler(bookingService, sugar)

	catalogHandler := catalog.NewHandler(cat)

	conciergeHandler := concierge.NewHandler(
		concierge.NewService(buildGenerator(cfg, sugar), sugar),
	)

	j := jwtsvc.New(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	adminService := admin.NewService(cfg.Admin.PasswordHash, j)
	adminHandler := admin.NewHandler(adminService, sugar)

	loginLimiter := middleware.NewLoginRateLimiter(rate.Every(6*time.Second), 5)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(sugar))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		// public
		bookingHandler.RegisterPublicRoutes(api)
		paymentHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
		conciergeHandler.RegisterRoutes(api)

		login := api.Group("/")
		login.Use(loginLimiter.Middleware())
		adminHandler.RegisterRoutes(login)

		// admin
		protected := api.Group("/")
		protected.Use(middleware.RequireAdmin(j))
		bookingHandler.RegisterAdminRoutes(protected)
	}

	sugar.Infow("starting server",
		"port", cfg.Server.Port,
		"payment_provider", paymentService.Provider(),
	)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		sugar.Fatal(err)
	}
}

// selectProcessor picks the one configured payment backend. A deployment runs
// exactly one; the other provider's endpoint answers 503.
func selectProcessor(cfg *config.Config, log *zap.SugaredLogger) payment.Processor {
	switch cfg.Payment.Provider {
	case "stripe":
		if cfg.Stripe.SecretKey == "" {
			log.Warn("STRIPE_SECRET_KEY is empty, payments will fail")
			return nil
		}
		return payment.NewStripeProcessor(cfg.Stripe.SecretKey)
	case "anz":
		if cfg.ANZ.MerchantID == "" || cfg.ANZ.APIPassword == "" {
			log.Warn("ANZ credentials are empty, payments will fail")
			return nil
		}
		return payment.NewANZProcessor(cfg.ANZ.MerchantID, cfg.ANZ.APIPassword, cfg.ANZ.BaseURL)
	default:
		log.Warnw("unknown payment provider", "provider", cfg.Payment.Provider)
		return nil
	}
}

func buildGenerator(cfg *config.Config, log *zap.SugaredLogger) concierge.Generator {
	if cfg.Concierge.APIKey == "" {
		log.Warn("GEMINI_API_KEY is empty, concierge will answer with fallback copy")
		return nil
	}
	gen, err := concierge.NewGeminiGenerator(context.Background(), cfg.Concierge.APIKey, cfg.Concierge.Model)
	if err != nil {
		log.Errorw("failed to init gemini client", "error", err)
		return nil
	}
	return gen
}

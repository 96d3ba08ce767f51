package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"someswar-temple/internal/admin"
	"someswar-temple/internal/auth"
	"someswar-temple/internal/bookings"
	"someswar-temple/internal/cache"
	"someswar-temple/internal/config"
	"someswar-temple/internal/db"
	"someswar-temple/internal/middleware"
	"someswar-temple/internal/notifications"
	"someswar-temple/internal/payment"
	"someswar-temple/internal/pujas"
	"someswar-temple/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		cacheStore = redisCache
	}

	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	jwtManager := &auth.Manager{
		Secret:    []byte(cfg.JWTSecret),
		AccessTTL: time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		Issuer:    "someswar-temple",
	}

	var gateway payment.Gateway
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		gateway = payment.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		logger.Info("razorpay gateway enabled", slog.String("key_id", cfg.RazorpayKeyID))
	} else {
		logger.Warn("razorpay gateway disabled: bookings cannot be created")
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	pujasRepo := pujas.NewRepository(cols.Pujas)
	pujasService := pujas.NewService(pujasRepo, cacheStore, cacheTTL, logger)
	pujasHandler := pujas.NewHandler(pujasService, val, logger)

	var notifier bookings.Notifier
	if mailer != nil {
		notifier = mailer
	}
	bookingsRepo := bookings.NewRepository(cols.Bookings)
	bookingsService := bookings.NewService(bookingsRepo, pujasRepo, gateway, notifier, cfg.Timezone, cfg.BookingWindowDays)
	bookingsHandler := bookings.NewHandler(bookingsService, val, logger, cfg.PublicBaseURL)

	usersRepo := admin.NewUserRepository(cols.Users)
	adminService := admin.NewService(usersRepo, jwtManager)
	adminHandler := admin.NewHandler(adminService, val, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	bookingsLimiter := middleware.NewRateLimiter(cfg.RateLimitBookings, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimitLogin, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/pujas", pujasHandler.List)
		api.Get("/pujas/{id}", pujasHandler.Get)
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.AdminAuth(jwtManager))
			protected.Post("/pujas", pujasHandler.Create)
			protected.Put("/pujas/{id}", pujasHandler.Update)
			protected.Delete("/pujas/{id}", pujasHandler.Delete)
		})

		api.Route("/bookings", func(b chi.Router) {
			b.With(bookingsLimiter.Middleware).Post("/create-order", bookingsHandler.CreateOrder)
			b.Post("/verify-payment", bookingsHandler.VerifyPayment)
			b.Get("/get-booking/{bookingId}", bookingsHandler.GetBooking)
			b.Post("/fail/{bookingId}", bookingsHandler.FailBooking)
			b.Get("/receipt/{bookingId}", bookingsHandler.Receipt)

			b.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(jwtManager))
				protected.Get("/get-all-bookings", bookingsHandler.ListBookings)
				protected.Get("/report", bookingsHandler.Report)
			})
		})

		api.Route("/auth/admin", func(a chi.Router) {
			a.With(loginLimiter.Middleware).Post("/login", adminHandler.Login)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/booking"
	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/logger"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func runServe(ctx context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if err := cfg.RequireServe(); err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	log.WithFields(map[string]interface{}{
		"database":        cfg.MongoDatabase,
		"port":            cfg.Port,
		"failure_mode":    cfg.FailureMode,
		"unique_bookings": cfg.UniqueBookings,
	}).Info("starting doctors portal")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer disconnect(client, log)
	st := store.New(client.Database(cfg.MongoDatabase))
	log.Info("Successfully connected to MongoDB!")

	if cfg.UniqueBookings {
		idxCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		names, err := st.EnsureIndexes(idxCtx, true)
		cancel()
		if err != nil {
			return err
		}
		log.WithField("indexes", names).Info("unique indexes ensured")
	}

	// --- Services ---
	tokens := auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL)
	var gateway services.PaymentGateway = services.DisabledGateway{}
	if cfg.StripeSecretKey != "" {
		gateway = services.NewStripeGateway(cfg.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY is not set, payment intents are disabled")
	}
	notifier := services.NewNotificationService(cfg.TextbeltAPIKey, "", log)
	defer notifier.Wait()
	metrics := middleware.NewMetrics()

	h := handlers.NewHandler(handlers.Deps{
		Options:     st.Options,
		Bookings:    st.Bookings,
		Users:       st.Users,
		Doctors:     st.Doctors,
		Payments:    st.Payments,
		Contacts:    st.Contacts,
		Guard:       booking.NewGuard(st.Bookings),
		Tokens:      tokens,
		Gateway:     gateway,
		Notifier:    notifier,
		Counters:    metrics,
		Currency:    cfg.PaymentCurrency,
		FailureMode: cfg.FailureMode,
		Log:         log,
	})

	// --- Gin Router ---
	r, err := newRouter(cfg)
	if err != nil {
		return err
	}
	r.Use(gin.Recovery(), middleware.RequestLogger(log), metrics.Instrument(), cors.New(corsConfig(cfg)))

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	go limiter.Sweep(time.Minute, 3*time.Minute, ctx.Done())

	h.RegisterRoutes(r, middleware.NewAuthorizer(tokens, st.Users, log), limiter.Limit())
	if cfg.MetricsEnabled {
		r.GET("/metrics", metrics.Handler())
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server running on port %s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the engine. Forwarded headers are only honoured from
// TRUSTED_PROXIES; with none configured ClientIP is the socket peer.
func newRouter(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	return r, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.CORSOrigins
	c.AllowCredentials = true
	return c
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/williamhcy/stripe-payment-restful/internal/config"
	"github.com/williamhcy/stripe-payment-restful/internal/payments/handlers"
	"github.com/williamhcy/stripe-payment-restful/internal/stripe"
	"github.com/williamhcy/stripe-payment-restful/internal/web"
)

func main() {
	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(cfg)
	stripeClient := stripe.NewClient(cfg.StripeAPIBaseURL, cfg.StripeSecretKey, logger)

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load templates")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())

	intents := handlers.NewPaymentIntentHandler(stripeClient)
	customers := handlers.NewCustomerHandler(stripeClient)
	checkout := handlers.NewCheckoutHandler(stripeClient)
	status := handlers.NewStatusHandler(stripeClient)
	pages := handlers.NewPagesHandler(cfg.StripePublishableKey)

	e.GET("/", pages.Index)
	e.GET("/checkout", pages.Checkout)

	e.POST("/create-payment-intent", intents.Create)
	e.POST("/update-payment-intent", intents.Update)
	e.POST("/confirm-payment", intents.Confirm)
	e.GET("/retrieve-payment-intent/:id", intents.Retrieve)
	e.GET("/list-payment-intents", intents.List)

	e.POST("/create-customer", customers.Create)
	e.GET("/list-customers", customers.List)

	e.POST("/create-checkout-session", checkout.CreateSession)
	e.GET("/payment-success", checkout.Success)
	e.GET("/payment-cancel", checkout.Cancel)

	e.GET("/api-status", status.APIStatus)
	e.GET("/health", status.Health)

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server started")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsProduction() {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rbdtech/afc-portal-api/internal/config"
	"github.com/rbdtech/afc-portal-api/internal/handler"
	appointmentHandler "github.com/rbdtech/afc-portal-api/internal/handler/appointment"
	authHandler "github.com/rbdtech/afc-portal-api/internal/handler/auth"
	doctorHandler "github.com/rbdtech/afc-portal-api/internal/handler/doctor"
	enquiryHandler "github.com/rbdtech/afc-portal-api/internal/handler/enquiry"
	intakeHandler "github.com/rbdtech/afc-portal-api/internal/handler/intake"
	patientHandler "github.com/rbdtech/afc-portal-api/internal/handler/patient"
	"github.com/rbdtech/afc-portal-api/internal/middleware"
	"github.com/rbdtech/afc-portal-api/internal/repository/memstore"
	"github.com/rbdtech/afc-portal-api/internal/router"
	appointmentService "github.com/rbdtech/afc-portal-api/internal/service/appointment"
	authService "github.com/rbdtech/afc-portal-api/internal/service/auth"
	doctorService "github.com/rbdtech/afc-portal-api/internal/service/doctor"
	enquiryService "github.com/rbdtech/afc-portal-api/internal/service/enquiry"
	intakeService "github.com/rbdtech/afc-portal-api/internal/service/intake"
	patientService "github.com/rbdtech/afc-portal-api/internal/service/patient"
	pkgauth "github.com/rbdtech/afc-portal-api/pkg/auth"
	"github.com/rbdtech/afc-portal-api/pkg/logger"
	"github.com/rbdtech/afc-portal-api/pkg/webhook"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	// The store is constructed once and handed to every consumer; there
	// is no ambient/global state.
	store := memstore.NewSeeded()

	jwtSvc := pkgauth.NewJWTService(pkgauth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Expiry:        cfg.JWT.Expiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	authSvc, err := authService.NewService(store, jwtSvc, cfg.Auth.DemoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}
	patientSvc := patientService.NewService(store, store)
	doctorSvc := doctorService.NewService(store, store)
	appointmentSvc := appointmentService.NewService(store, store)
	enquirySvc := enquiryService.NewService(store)

	webhookClient := webhook.NewClient(webhook.Config{
		URL:     cfg.Webhook.URL,
		Timeout: cfg.Webhook.Timeout,
	})
	intakeSvc := intakeService.NewService(webhookClient, appLogger, cfg.Webhook.Enabled)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	enquiryH := enquiryHandler.NewHandler(enquirySvc)
	intakeH := intakeHandler.NewHandler(intakeSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(
		authMiddleware,
		authH,
		patientH,
		doctorH,
		appointmentH,
		enquiryH,
		intakeH,
		h,
		router.RouterConfig{
			RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORSConfig:     corsConfig,
			MetricsPath:    cfg.Monitoring.MetricsPath,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

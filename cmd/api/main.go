package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hoangvt/caulong/docs"
	"github.com/hoangvt/caulong/internal/audit"
	"github.com/hoangvt/caulong/internal/auth"
	"github.com/hoangvt/caulong/internal/config"
	"github.com/hoangvt/caulong/internal/database"
	"github.com/hoangvt/caulong/internal/payment"
	"github.com/hoangvt/caulong/internal/scheduler"
	"github.com/hoangvt/caulong/internal/session"
	"github.com/hoangvt/caulong/internal/settlement"
	"github.com/hoangvt/caulong/internal/stats"
	"github.com/hoangvt/caulong/internal/user"
	"github.com/hoangvt/caulong/internal/vote"
	mw "github.com/hoangvt/caulong/pkg/middleware"
)

// @title          Badminton Session Settlement API
// @version        1.0
// @description    Attendance voting, tiered cost splitting, and payment tracking for a badminton group.
// @BasePath       /api/v1

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := mw.NewLogger(cfg.LogFormat, cfg.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	logger.Info().Msg("connected to database")

	pricing := settlement.PricingPolicy{
		CourtPrice:   cfg.CourtPrice,
		ShuttlePrice: cfg.ShuttlePrice,
		FemalePrice:  cfg.FemalePrice,
	}

	authMW := mw.NewAuth(cfg.JWTSecret, cfg.TokenTTL)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("invalid timezone, using local")
		loc = time.Local
	}

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Session feature
	sessionRepo := session.NewRepository(db)
	sessionService := session.NewService(sessionRepo, loc)
	sessionHandler := session.NewHandler(sessionService)

	// Vote feature
	voteRepo := vote.NewRepository(db)
	voteService := vote.NewService(voteRepo, userRepo, sessionRepo)
	voteHandler := vote.NewHandler(voteService)

	// Audit log
	auditRepo := audit.NewRepository(db)
	auditHandler := audit.NewHandler(auditRepo)

	// Settlement engine
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, auditRepo, pricing, logger)
	settlementHandler := settlement.NewHandler(settlementService)

	// Payment ledger
	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, sessionRepo, auditRepo)
	paymentHandler := payment.NewHandler(paymentService)

	// Statistics
	statsRepo := stats.NewRepository(db)
	statsService := stats.NewService(statsRepo, settlementRepo, pricing)
	statsHandler := stats.NewHandler(statsService)

	// Admin auth
	authHandler := auth.NewHandler(authMW, cfg.AdminPassword)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/users", userHandler.Routes())

		r.Route("/sessions", func(r chi.Router) {
			sessionHandler.Register(r)
			r.Route("/{sessionId}", func(r chi.Router) {
				sessionHandler.RegisterItem(r)
				voteHandler.Register(r)
				settlementHandler.Register(r)
				paymentHandler.RegisterSession(r)
			})
		})

		// Admin-only surface
		r.Group(func(r chi.Router) {
			r.Use(authMW.RequireAuth)
			r.Get("/auth/verify", authHandler.Verify)

			r.Group(func(r chi.Router) {
				r.Use(authMW.RequireAdmin)
				r.Mount("/payments", paymentHandler.Routes())
				r.Mount("/statistics", statsHandler.Routes())
				r.Mount("/audit", auditHandler.Routes())
			})
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SchedulerEnabled {
		sched := scheduler.New(sessionService, sessionRepo, auditRepo, scheduler.Config{
			Hour:     cfg.SchedulerHour,
			PlayDays: cfg.PlayDays,
			Location: loc,
		}, logger)
		go sched.Start(ctx)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/sparkwave/sparkwave-login/application/usecase"
	"github.com/sparkwave/sparkwave-login/application/usecase/user_management"
	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/config"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/handler"
	"github.com/sparkwave/sparkwave-login/infrastructure/http/middleware"
	"github.com/sparkwave/sparkwave-login/infrastructure/persistence/postgres"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/jwt"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/mail"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/password"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/ratelimit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	structuredLogger := logger.NewStructuredLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "sparkwave-login",
	})
	structuredLogger.Info(ctx, "application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}
	structuredLogger.Info(ctx, "database connection established", nil)

	// Repositories and transaction runner
	userRepo := postgres.NewUserRepository(db)
	logRepo := postgres.NewAccessLogRepository(db)
	txRunner := postgres.NewTxRunner(db)

	// Services
	tokenService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	passwordService := password.NewBcryptPasswordService(10)

	var sender mail.Sender
	if cfg.MailEnabled {
		smtpSender, err := mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
		if err != nil {
			log.Fatalf("failed to initialize SMTP sender: %v", err)
		}
		sender = smtpSender
	} else {
		sender = &mail.LogSender{Logger: structuredLogger}
		structuredLogger.Info(ctx, "mail disabled", nil)
	}
	dispatcher := mail.NewDispatcher(sender, structuredLogger, 0)
	dispatcher.Start(ctx)
	defer dispatcher.Close()
	mailer := mail.NewNotifier(dispatcher)

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{
		Enabled:  cfg.RateLimitEnabled,
		RedisURL: cfg.RedisURL,
		Attempts: cfg.RateLimitAttempts,
		Window:   cfg.RateLimitWindow,
	}, structuredLogger)
	if err != nil {
		log.Fatalf("failed to initialize rate limiter: %v", err)
	}

	// Use cases
	accessLogUseCase := usecase.NewAccessLogUseCase(logRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, accessLogUseCase, tokenService, passwordService, mailer, txRunner, structuredLogger)
	userManagement := user_management.NewUserManagementUseCase(userRepo, accessLogUseCase, passwordService, mailer, txRunner, structuredLogger)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, logRepo)
	exportUseCase := usecase.NewExportUseCase(userRepo, logRepo)

	// HTTP surface
	authMw := middleware.NewAuthMiddleware(tokenService)
	limitMw := middleware.RateLimit(limiter, structuredLogger)

	router := mux.NewRouter()
	router.Use(middleware.CorrelationID)
	if cfg.CORSEnabled {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"healthy"}`)
	}).Methods(http.MethodGet)

	handler.NewAuthHandler(authUseCase, cfg.RedirectURL).RegisterRoutes(router, authMw, limitMw)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.RequireRole(entity.RoleAdmin))
	handler.NewUserHandler(userManagement).RegisterRoutes(admin)
	handler.NewAccessLogHandler(accessLogUseCase).RegisterRoutes(admin)
	handler.NewDashboardHandler(dashboardUseCase).RegisterRoutes(admin)
	handler.NewExportHandler(exportUseCase).RegisterRoutes(admin)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		structuredLogger.Info(ctx, "server listening", map[string]interface{}{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "server failed", err, nil)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	structuredLogger.Info(context.Background(), "shutting down", nil)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(context.Background(), "shutdown failed", err, nil)
	}
}

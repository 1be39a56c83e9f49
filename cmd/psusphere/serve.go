package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/handler"
	"github.com/Chodoro/psusphere/internal/middleware"
	"github.com/Chodoro/psusphere/pkg/config"
	"github.com/Chodoro/psusphere/pkg/middleware/ratelimit"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.migrate(); err != nil {
		return err
	}

	if a.cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := ratelimit.New(ratelimit.Config{
		PerMinute: a.cfg.RateLimit.LoginPerMinute,
		Burst:     a.cfg.RateLimit.LoginBurst,
	})
	defer limiter.Stop()

	svc := a.services()
	router := handler.NewRouter(handler.RouterDeps{
		Env:            a.cfg.Env,
		APIPrefix:      a.cfg.APIPrefix,
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
		Logger:         a.logger,
		Metrics:        a.metrics,
		DB:             a.db,
		LoginLimiter:   limiter,
		Gate: middleware.GateConfig{
			LoginPath:  a.cfg.Session.LoginPath,
			CookieName: a.cfg.Session.CookieName,
		},
		Auth: svc.auth,
		AuthConfig: handler.AuthHandlerConfig{
			CookieName:   a.cfg.Session.CookieName,
			CookieSecure: a.cfg.Session.CookieSecure,
			LoginPath:    a.cfg.Session.LoginPath,
		},
		Colleges:      svc.colleges,
		Programs:      svc.programs,
		Students:      svc.students,
		Organizations: svc.organizations,
		OrgMembers:    svc.members,
		Home:          svc.home,
		Exports:       svc.exports,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Sugar().Infow("server starting", "addr", srv.Addr, "env", a.cfg.Env)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	a.logger.Info("server stopped")
	return nil
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
	"github.com/saulo-duarte/mocktest-lambda/internal/container"
	"github.com/saulo-duarte/mocktest-lambda/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("invalid configuration")
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	c, err := container.New(ctx, cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build application")
	}

	handler := router.New(router.RouterConfig{
		MockTestHandler: c.MockTestContainer.Handler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
		CorsOrigins:     cfg.CorsOrigins,
	})

	if config.IsLambda() {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		config.Logger.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("graceful shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/auth"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/cart"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/config"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/notify"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/order"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/product"
)

// @title Snackolicious Delights API
// @version 1.0
// @description E-commerce backend for the Bhukta Foods storefront.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		slog.Error("postgres pool init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var mailer order.Mailer
	if cfg.SMTPAddr != "" {
		mailer = &notify.SMTPMailer{
			Addr:     cfg.SMTPAddr,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			AdminTo:  cfg.AdminEmail,
		}
	} else {
		slog.Warn("SMTP not configured, emails will only be logged")
		mailer = &notify.LogMailer{}
	}

	dispatcher := notify.NewDispatcher(64, 30*time.Second, slog.Default())
	defer dispatcher.Close()

	d := deps{
		orders:   order.NewService(order.NewPGRepo(pool), mailer, dispatcher, slog.Default()),
		products: product.NewPGRepo(pool),
		carts:    cart.NewPGRepo(pool),
		users:    auth.NewPGRepo(pool),
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(cfg, d),
	}

	go func() {
		slog.Info("api listening", "addr", cfg.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

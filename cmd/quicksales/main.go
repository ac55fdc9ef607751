package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dmungal1308/QuickSales-sub000/internal/app"
	"github.com/Dmungal1308/QuickSales-sub000/internal/app/config"
	"github.com/Dmungal1308/QuickSales-sub000/internal/service"
)

// Demo/automation entrypoint: logs in with the configured credentials,
// loads the available catalog and prints it. The core itself is a library;
// this binary exists so the wiring can be exercised end to end.
func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Demo.Email == "" {
		application.Logger().Info("No demo credentials configured (QS_EMAIL/QS_PASSWORD); nothing to do")
		return
	}

	user, err := application.Auth.Login(ctx, cfg.Demo.Email, cfg.Demo.Password)
	if err != nil {
		application.Logger().Fatalf("Login failed: %v", err)
	}
	application.Logger().Infof("Logged in as %s (id=%d)", user.Username, user.ID)

	catalog := application.Catalog(ctx, service.ViewAvailable)
	defer catalog.Close()

	if err := catalog.Load(); err != nil {
		application.Logger().Fatalf("Failed to load catalog: %v", err)
	}

	for _, p := range catalog.Visible() {
		marker := " "
		if catalog.IsFavorite(p.ID) {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %6d  %-40s %10s €\n", marker, p.ID, p.Name, p.Price)
	}

	balance, err := application.Wallet.Balance(ctx)
	if err != nil {
		application.Logger().Warnf("Failed to fetch balance: %v", err)
		return
	}
	application.Logger().Infof("Wallet balance: %s €", balance)
}

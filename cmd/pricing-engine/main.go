// Package main запускает расчёт цен каталога и управление пользователями
// на данных из конфига или на демонстрационном наборе.
package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/pricing-engine/internal/app/catalog"
	"github.com/magabrotheeeer/pricing-engine/internal/config"
	"github.com/magabrotheeeer/pricing-engine/internal/lib/logger"
	"github.com/magabrotheeeer/pricing-engine/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env, os.Stdout)

	log.Info("starting pricing-engine", slog.String("env", cfg.Env))
	log.Debug("config loaded", slog.String("config", cfg.String()))

	app, err := catalog.New(cfg, log, prometheus.NewRegistry())
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	report, err := app.Run()
	if err != nil {
		log.Error("run failed", sl.Err(err))
		os.Exit(1)
	}

	log.Info("pricing-engine finished",
		slog.String("run_id", report.RunID),
		slog.Int("products", len(report.Prices)),
		slog.Int("active_users", len(report.ActiveAfter)))
}

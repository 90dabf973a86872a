// Package catalog собирает приложение: стратегию расчёта цен, движок и менеджер
// пользователей, и прогоняет начальный каталог через все способы создания сущностей.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/pricing-engine/internal/config"
	"github.com/magabrotheeeer/pricing-engine/internal/lib/sl"
	"github.com/magabrotheeeer/pricing-engine/internal/models"
	"github.com/magabrotheeeer/pricing-engine/internal/services/pricing"
	"github.com/magabrotheeeer/pricing-engine/internal/services/users"
)

// PricedProduct — продукт и его итоговая цена.
type PricedProduct struct {
	Product    models.Product
	FinalPrice float64
}

// Report содержит результат одного запуска.
type Report struct {
	RunID        string
	Prices       []PricedProduct
	ActiveBefore []*models.User // Активные пользователи до деактивации
	ActiveAfter  []*models.User // Активные пользователи после деактивации
	Deactivated  []string
}

type App struct {
	log     *slog.Logger
	engine  *pricing.Engine
	catalog config.Catalog
	metrics prometheus.Gatherer
}

// New создает приложение. Метрики стратегии регистрируются в reg.
func New(cfg *config.Config, log *slog.Logger, reg *prometheus.Registry) (*App, error) {
	const op = "app.catalog.New"

	rounding, err := pricing.ParseRoundingMode(cfg.Pricing.Rounding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	calculator, err := pricing.NewInstrumentedCalculator(
		pricing.NewStandardCalculator(rounding), pricing.StrategyStandard, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("pricing engine configured",
		slog.String("strategy", pricing.StrategyStandard),
		slog.String("rounding", rounding.String()))

	return &App{
		log:     log,
		engine:  pricing.NewEngine(calculator),
		catalog: cfg.Catalog,
		metrics: reg,
	}, nil
}

// Run рассчитывает цены продуктов, регистрирует пользователей, выводит активных,
// деактивирует указанных и снова выводит активных. Первая же ошибка создания
// сущности прерывает запуск. Каждый запуск начинает с пустого менеджера пользователей.
func (a *App) Run() (*Report, error) {
	const op = "app.catalog.Run"
	report := &Report{RunID: uuid.NewString()}
	log := a.log.With(sl.Op(op), slog.String("run_id", report.RunID))

	var (
		products   []models.Product
		seedUsers  []*models.User
		deactivate []string
		err        error
	)
	if a.catalog.IsEmpty() {
		log.Info("catalog is empty, using demo data")
		products, seedUsers, deactivate, err = demoCatalog()
	} else {
		products, seedUsers, err = configCatalog(a.catalog)
		deactivate = a.catalog.Deactivate
	}
	if err != nil {
		log.Error("failed to build catalog", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range products {
		price := a.engine.FinalPrice(p)
		report.Prices = append(report.Prices, PricedProduct{Product: p, FinalPrice: price})
		log.Info("product priced", slog.String("product", p.String()), slog.Float64("final_price", price))
	}

	manager := users.NewManager()
	for _, u := range seedUsers {
		manager.AddUser(u)
	}
	report.ActiveBefore = manager.ListActiveUsers()
	logUsers(log, "active users", report.ActiveBefore)

	for _, username := range deactivate {
		found := false
		for _, u := range seedUsers {
			if u.Username() == username {
				u.Deactivate()
				found = true
			}
		}
		if !found {
			log.Warn("user to deactivate not found", slog.String("username", username))
			continue
		}
		report.Deactivated = append(report.Deactivated, username)
		log.Info("user deactivated", slog.String("username", username))
	}
	report.ActiveAfter = manager.ListActiveUsers()
	logUsers(log, "active users after deactivation", report.ActiveAfter)

	a.logMetrics(log)
	return report, nil
}

func logUsers(log *slog.Logger, msg string, list []*models.User) {
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.String())
	}
	log.Info(msg, slog.Int("count", len(list)), slog.Any("users", names))
}

func (a *App) logMetrics(log *slog.Logger) {
	families, err := a.metrics.Gather()
	if err != nil {
		log.Warn("failed to gather metrics", sl.Err(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				log.Debug("metric", slog.String("name", mf.GetName()), slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				log.Debug("metric", slog.String("name", mf.GetName()),
					slog.Uint64("count", m.GetHistogram().GetSampleCount()),
					slog.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
		}
	}
}

package pricing

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/pricing-engine/internal/models"
)

// InstrumentedCalculator оборачивает стратегию и считает вызовы и итоговые цены.
// Результат расчёта не меняется.
type InstrumentedCalculator struct {
	next         PriceCalculator
	calculations prometheus.Counter
	prices       prometheus.Observer
}

// NewInstrumentedCalculator регистрирует метрики стратегии strategy в reg
// и возвращает обёртку над next.
func NewInstrumentedCalculator(next PriceCalculator, strategy string, reg prometheus.Registerer) (*InstrumentedCalculator, error) {
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_calculations_total",
		Help: "Number of final price calculations.",
	}, []string{"strategy"})
	prices := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_final_price",
		Help:    "Distribution of calculated final prices.",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	}, []string{"strategy"})

	if err := reg.Register(calculations); err != nil {
		return nil, err
	}
	if err := reg.Register(prices); err != nil {
		reg.Unregister(calculations)
		return nil, err
	}

	return &InstrumentedCalculator{
		next:         next,
		calculations: calculations.WithLabelValues(strategy),
		prices:       prices.WithLabelValues(strategy),
	}, nil
}

// Calculate делегирует расчёт и записывает метрики.
func (c *InstrumentedCalculator) Calculate(p models.Product) float64 {
	price := c.next.Calculate(p)
	c.calculations.Inc()
	c.prices.Observe(price)
	return price
}

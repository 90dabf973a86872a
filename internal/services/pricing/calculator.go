// Package pricing содержит стратегии расчёта итоговой цены продукта
// и движок, которому стратегия передаётся при создании.
package pricing

import "github.com/magabrotheeeer/pricing-engine/internal/models"

// StrategyStandard — имя стандартной стратегии в метриках и логах.
const StrategyStandard = "standard"

// PriceCalculator описывает стратегию расчёта итоговой цены.
type PriceCalculator interface {
	// Calculate возвращает итоговую цену продукта.
	Calculate(p models.Product) float64
}

// StandardCalculator применяет скидку, затем налог на цену со скидкой,
// и округляет результат до двух знаков.
type StandardCalculator struct {
	rounding RoundingMode
}

// NewStandardCalculator создаёт стандартную стратегию с заданным округлением.
func NewStandardCalculator(rounding RoundingMode) *StandardCalculator {
	return &StandardCalculator{rounding: rounding}
}

// Calculate считает цену: base - discount%, затем + tax% от цены со скидкой.
func (c *StandardCalculator) Calculate(p models.Product) float64 {
	price := p.BasePrice()
	price -= price * (p.Discount() / 100)
	price += price * (p.Tax() / 100)
	return c.rounding.Round(price, pricePrecision)
}

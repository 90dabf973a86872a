package pricing

import "github.com/magabrotheeeer/pricing-engine/internal/models"

// Engine считает итоговые цены через стратегию, переданную при создании.
type Engine struct {
	calculator PriceCalculator
}

// NewEngine создает движок с заданной стратегией. Заменить стратегию после создания нельзя.
func NewEngine(calculator PriceCalculator) *Engine {
	return &Engine{
		calculator: calculator,
	}
}

// FinalPrice возвращает итоговую цену продукта.
func (e *Engine) FinalPrice(p models.Product) float64 {
	return e.calculator.Calculate(p)
}

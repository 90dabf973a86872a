package pricing

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pricing-engine/internal/models"
)

type CalculatorMock struct{ mock.Mock }

func (m *CalculatorMock) Calculate(p models.Product) float64 {
	args := m.Called(p)
	return args.Get(0).(float64)
}

func TestEngine_FinalPriceDelegates(t *testing.T) {
	p := mustProduct(t, "Laptop", 50000, 10, 18)

	calc := new(CalculatorMock)
	calc.On("Calculate", p).Return(42.5).Twice()

	engine := NewEngine(calc)
	assert.Equal(t, 42.5, engine.FinalPrice(p))
	assert.Equal(t, 42.5, engine.FinalPrice(p))

	calc.AssertExpectations(t)
}

func TestEngine_WithStandardCalculator(t *testing.T) {
	engine := NewEngine(NewStandardCalculator(RoundHalfEven))

	laptop := mustProduct(t, "Laptop", 50000, 10, 18)
	phone, err := models.ProductFromMap(map[string]any{"name": "Phone", "base_price": 20000, "discount": 5, "tax": 18})
	require.NoError(t, err)
	headphones, err := models.ProductFromString("Headphones,3000,20,18")
	require.NoError(t, err)

	assert.Equal(t, 53100.0, engine.FinalPrice(laptop))
	assert.Equal(t, 22420.0, engine.FinalPrice(phone))
	assert.Equal(t, 2832.0, engine.FinalPrice(headphones))
}

func TestInstrumentedCalculator(t *testing.T) {
	reg := prometheus.NewRegistry()
	calc, err := NewInstrumentedCalculator(NewStandardCalculator(RoundHalfEven), StrategyStandard, reg)
	require.NoError(t, err)

	engine := NewEngine(calc)
	assert.Equal(t, 53100.0, engine.FinalPrice(mustProduct(t, "Laptop", 50000, 10, 18)))
	assert.Equal(t, 2832.0, engine.FinalPrice(mustProduct(t, "Headphones", 3000, 20, 18)))

	families, err := reg.Gather()
	require.NoError(t, err)

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "strategy", m.GetLabel()[0].GetName())
		assert.Equal(t, StrategyStandard, m.GetLabel()[0].GetValue())

		switch mf.GetName() {
		case "pricing_calculations_total":
			assert.Equal(t, 2.0, m.GetCounter().GetValue())
		case "pricing_final_price":
			assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
			assert.Equal(t, 55932.0, m.GetHistogram().GetSampleSum())
		}
	}
	assert.True(t, found["pricing_calculations_total"])
	assert.True(t, found["pricing_final_price"])
}

func TestInstrumentedCalculator_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewInstrumentedCalculator(NewStandardCalculator(RoundHalfEven), StrategyStandard, reg)
	require.NoError(t, err)

	_, err = NewInstrumentedCalculator(NewStandardCalculator(RoundHalfEven), StrategyStandard, reg)
	assert.Error(t, err)
}

package pricing

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// RoundingMode задаёт правило округления итоговой цены.
type RoundingMode int

const (
	// RoundHalfEven — банковское округление: 0.125 -> 0.12, 0.375 -> 0.38.
	RoundHalfEven RoundingMode = iota
	// RoundHalfAwayFromZero — «школьное» округление: 0.125 -> 0.13.
	RoundHalfAwayFromZero
)

// pricePrecision — количество знаков после запятой в итоговой цене.
const pricePrecision = 2

// ParseRoundingMode разбирает название режима из конфига.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch s {
	case "", "half_even":
		return RoundHalfEven, nil
	case "half_away_from_zero":
		return RoundHalfAwayFromZero, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q", s)
	}
}

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfEven:
		return "half_even"
	case RoundHalfAwayFromZero:
		return "half_away_from_zero"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// Round округляет значение до places знаков после запятой.
// Округляется точное двоичное значение v, поэтому 2.675 (хранится как 2.67499...) даёт 2.67.
func (m RoundingMode) Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if m == RoundHalfAwayFromZero {
		return roundHalfAway(v, places)
	}
	// strconv выполняет точное десятичное преобразование, равные половины уходят к чётной цифре.
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return r
}

// roundHalfAway округляет |v|*10^places в точной арифметике big.Float.
func roundHalfAway(v float64, places int) float64 {
	const prec = 256

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	x := new(big.Float).SetPrec(prec).SetFloat64(math.Abs(v))
	x.Mul(x, new(big.Float).SetPrec(prec).SetInt(scale))

	n, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(prec).Sub(x, new(big.Float).SetPrec(prec).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	r, _ := strconv.ParseFloat(n.String()+"e-"+strconv.Itoa(places), 64)
	return math.Copysign(r, v)
}

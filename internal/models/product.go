// Package models содержит доменные сущности каталога: продукт с ценовыми
// параметрами и пользователя с ролью и признаком активности.
//
// Продукт создаётся только через проверяющие конструкторы, поэтому экземпляр
// с ценой или процентами вне допустимых границ получить невозможно.
// Пользователь, наоборот, не проверяется и меняется только через Deactivate.
package models

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

// productFieldsCount — количество полей в строке вида name,base_price,discount,tax.
const productFieldsCount = 4

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В ошибках используем имена из json-тегов, чтобы Field совпадал с ключами словаря.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// productParams — сырые параметры продукта до проверки.
type productParams struct {
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price" validate:"gte=0"`
	Discount  float64 `json:"discount" validate:"gte=0,lte=100"`
	Tax       float64 `json:"tax" validate:"gte=0,lte=100"`
}

// Product представляет товар с базовой ценой, скидкой и налогом в процентах.
// После создания не изменяется.
type Product struct {
	name      string
	basePrice float64
	discount  float64
	tax       float64
}

// NewProduct проверяет параметры и создаёт продукт.
//
// Базовая цена не может быть отрицательной, скидка и налог должны лежать
// в диапазоне [0, 100]. При нарушении возвращается *ValidationError
// для первого неверного поля в порядке base_price, discount, tax.
func NewProduct(name string, basePrice, discount, tax float64) (Product, error) {
	params := productParams{
		Name:      name,
		BasePrice: basePrice,
		Discount:  discount,
		Tax:       tax,
	}
	if err := validateProduct(params); err != nil {
		return Product{}, err
	}
	return Product{
		name:      params.Name,
		basePrice: params.BasePrice,
		discount:  params.Discount,
		tax:       params.Tax,
	}, nil
}

// ProductFromMap создаёт продукт из словаря.
// Ключи name и base_price обязательны, discount и tax по умолчанию равны нулю.
func ProductFromMap(data map[string]any) (Product, error) {
	name, ok, err := lookupString(data, "name")
	if err != nil {
		return Product{}, err
	}
	if !ok {
		return Product{}, fmt.Errorf("%w: name", ErrMissingField)
	}

	basePrice, ok, err := lookupNumber(data, "base_price")
	if err != nil {
		return Product{}, err
	}
	if !ok {
		return Product{}, fmt.Errorf("%w: base_price", ErrMissingField)
	}

	discount, _, err := lookupNumber(data, "discount")
	if err != nil {
		return Product{}, err
	}
	tax, _, err := lookupNumber(data, "tax")
	if err != nil {
		return Product{}, err
	}

	return NewProduct(name, basePrice, discount, tax)
}

// ProductFromString создаёт продукт из строки "name,base_price,discount,tax".
// Пробелы вокруг имени и чисел отбрасываются.
func ProductFromString(text string) (Product, error) {
	parts := strings.Split(text, ",")
	if len(parts) != productFieldsCount {
		return Product{}, fmt.Errorf("%w: expected %d comma-separated fields, got %d",
			ErrParse, productFieldsCount, len(parts))
	}

	values := make([]float64, 0, productFieldsCount-1)
	for i, key := range []string{"base_price", "discount", "tax"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil {
			return Product{}, fmt.Errorf("%w: %s %q is not a number", ErrParse, key, parts[i+1])
		}
		values = append(values, v)
	}

	return NewProduct(strings.TrimSpace(parts[0]), values[0], values[1], values[2])
}

// Name возвращает название продукта.
func (p Product) Name() string { return p.name }

// BasePrice возвращает цену до скидки и налога.
func (p Product) BasePrice() float64 { return p.basePrice }

// Discount возвращает скидку в процентах.
func (p Product) Discount() float64 { return p.discount }

// Tax возвращает налог в процентах.
func (p Product) Tax() float64 { return p.tax }

func (p Product) String() string {
	return fmt.Sprintf("%s: base=%.2f discount=%.2f%% tax=%.2f%%", p.name, p.basePrice, p.discount, p.tax)
}

func validateProduct(params productParams) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return toValidationError(errs[0])
}

func toValidationError(fe validator.FieldError) *ValidationError {
	switch fe.Field() {
	case "base_price":
		return &ValidationError{Field: fe.Field(), Message: "base price cannot be negative"}
	case "discount":
		return &ValidationError{Field: fe.Field(), Message: "discount must be between 0 and 100"}
	case "tax":
		return &ValidationError{Field: fe.Field(), Message: "tax must be between 0 and 100"}
	default:
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("field %s is not valid", fe.Field())}
	}
}

package models

import "errors"

var (
	// ErrValidation возвращается, когда параметры цены выходят за допустимые границы.
	ErrValidation = errors.New("validation failed")
	// ErrParse возвращается при разборе строки продукта неверного формата.
	ErrParse = errors.New("cannot parse product")
	// ErrMissingField возвращается, если в словаре нет обязательного ключа.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidField возвращается, если значение в словаре имеет неверный тип.
	ErrInvalidField = errors.New("invalid field type")
)

// ValidationError описывает нарушенное ограничение конкретного поля.
type ValidationError struct {
	Field   string // Имя поля: base_price, discount или tax
	Message string // Человеко-читаемое описание ограничения
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

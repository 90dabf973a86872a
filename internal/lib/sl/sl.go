// Package sl содержит вспомогательные функции для формирования
// структурированных полей лога slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
//
// Пример:
//
//	log.Error("failed to build product", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op возвращает slog.Attr с ключом "op" — имя операции, в которой пишется лог.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}

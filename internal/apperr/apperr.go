package apperr

import (
	"errors"
	"net/http"
)

// Классы ошибок домена. Сервисы возвращают их (напрямую или с текстом через
// хелперы ниже), хендлеры через Status выбирают HTTP-код.
var (
	ErrValidation   = errors.New("ошибка валидации")
	ErrUnauthorized = errors.New("нет авторизации")
	ErrForbidden    = errors.New("доступ запрещён")
	ErrNotFound     = errors.New("не найдено")
	ErrConflict     = errors.New("конфликт данных")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Validation — ошибка валидации с конкретным сообщением для клиента.
func Validation(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

func Conflict(msg string) error {
	return &kindError{kind: ErrConflict, msg: msg}
}

func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

func Forbidden(msg string) error {
	return &kindError{kind: ErrForbidden, msg: msg}
}

// Status сопоставляет ошибку сервиса HTTP-статусу.
// Конфликт уникальности отдаём как 400 — так зафиксирован контракт API.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает текст для клиента: доменные ошибки отдаём как есть,
// всё неизвестное прячем за общим сообщением (детали — только в логах).
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "Внутренняя ошибка сервера"
	}
	return err.Error()
}

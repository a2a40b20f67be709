// Package errors provides the application error type for the ledger service.
// Every service and domain error is an AppError so that handlers can answer
// with a consistent, localized message without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so wrapped
// copies of a sentinel still match it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors. ErrInvalidToken and ErrTokenExpired are kept apart
// for logging only; callers outside the session package treat them alike.
var (
	ErrEmptyCredentials   = &AppError{Code: "EMPTY_CREDENTIALS", Message: "Введите логин и пароль", StatusCode: http.StatusBadRequest}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Неверный логин или пароль", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Требуется авторизация", StatusCode: http.StatusUnauthorized}
	ErrTokenExpired       = &AppError{Code: "TOKEN_EXPIRED", Message: "Требуется авторизация", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Некорректные данные", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Ошибка сервера", StatusCode: http.StatusInternalServerError}
)

// Ledger entry validation errors.
var (
	ErrEmptyInput         = &AppError{Code: "EMPTY_INPUT", Message: "Введите дату", StatusCode: http.StatusBadRequest}
	ErrBadFormat          = &AppError{Code: "BAD_FORMAT", Message: "Дата должна быть в формате DD.MM.YYYY", StatusCode: http.StatusBadRequest}
	ErrBadMonth           = &AppError{Code: "BAD_MONTH", Message: "Некорректный месяц", StatusCode: http.StatusBadRequest}
	ErrBadDate            = &AppError{Code: "BAD_DATE", Message: "Некорректная дата", StatusCode: http.StatusBadRequest}
	ErrBadAmount          = &AppError{Code: "BAD_AMOUNT", Message: "Введите корректную сумму", StatusCode: http.StatusBadRequest}
	ErrMissingCategory    = &AppError{Code: "MISSING_CATEGORY", Message: "Выберите категорию", StatusCode: http.StatusBadRequest}
	ErrMissingSubcategory = &AppError{Code: "MISSING_SUBCATEGORY", Message: "Выберите подкатегорию", StatusCode: http.StatusBadRequest}
	ErrInvalidKind        = &AppError{Code: "INVALID_KIND", Message: "Неизвестный тип операции", StatusCode: http.StatusBadRequest}
)

// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход — сервисная ошибка (сентинел из internal/service), на выход:
//   - корректный HTTP-статус;
//   - краткое безопасное message и стабильный машинный code без утечки деталей.
//
// Маппинг:
//   - ErrInvalidArgument -> 400 invalid_argument (вход не прошёл валидацию);
//   - ErrNotConfigured   -> 400 not_configured (не задан VIDEO_ID);
//   - ErrNotFound        -> 404 not_found;
//   - ErrQuotaExceeded   -> 429 quota_exceeded (квота Data API);
//   - ErrUnavailable     -> 500 platform_unavailable (ошибка платформы);
//   - прочее (в т.ч. ErrInternal) -> 500 internal (отказ хранилища и т.д.).
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-video-dashboard/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует сервисную ошибку в HTTP-статус и унифицированный ответ.
// err == nil — программная ошибка вызова: 500/internal, чтобы не отдать
// "200 OK" с телом ошибки и не замаскировать баг.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrNotConfigured):
		return http.StatusBadRequest, "not_configured", "video id is not configured"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "quota_exceeded", "platform quota exceeded"
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusInternalServerError, "platform_unavailable", "platform call failed"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Коды ошибок, которые формирует сам клиент
const (
	CodeRequestTimeout = "REQUEST_TIMEOUT"
	CodeBadResponse    = "BAD_RESPONSE"
	CodeNetworkError   = "NETWORK_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
)

// StatusNetwork означает, что до HTTP ответа дело не дошло
const StatusNetwork = 0

const defaultFailureMessage = "Request failed."

// RequestError is the single typed error produced by the gateway.
// Status 0 means a network-level failure; Code is either one of the
// client codes above or a backend-supplied code passed through verbatim.
type RequestError struct {
	Err     error
	Message string
	Code    string
	Status  int
}

func (e *RequestError) Error() string {
	if e == nil {
		return "request error"
	}
	if e.Code != "" {
		return fmt.Sprintf("%s (status %d, %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// AsRequestError извлекает *RequestError из цепочки ошибок
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// IsAuthError сообщает, что backend отверг учетные данные (401 или 403)
func IsAuthError(err error) bool {
	reqErr, ok := AsRequestError(err)
	if !ok {
		return false
	}
	return reqErr.Status == http.StatusUnauthorized || reqErr.Status == http.StatusForbidden
}

// UserMessage возвращает текст для показа пользователю
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if reqErr, ok := AsRequestError(err); ok && reqErr.Message != "" {
		return reqErr.Message
	}
	return err.Error()
}

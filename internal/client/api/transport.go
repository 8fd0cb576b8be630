package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// loggingTransport логирует исходящие запросы.
// Логирует метод, путь, статус и время выполнения.
// НЕ логирует заголовки и тела: там токены и пароли.
type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger zerolog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	path := sanitizePath(req.URL.Path)

	if err != nil {
		t.logger.Debug().
			Err(err).
			Str("method", req.Method).
			Str("path", path).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("HTTP request failed")
		return nil, err
	}

	// Уровень зависит от статуса: ошибки сервера заметнее остального
	event := t.logger.Debug()
	if resp.StatusCode >= 500 {
		event = t.logger.Warn()
	}
	event.
		Str("method", req.Method).
		Str("path", path).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Int("status", resp.StatusCode).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("HTTP request")

	return resp, nil
}

// sanitizePath скрывает сегмент после /token/ или /reset/,
// чтобы токены в URL не попадали в лог
func sanitizePath(path string) string {
	if !strings.Contains(path, "/token/") && !strings.Contains(path, "/reset/") {
		return path
	}
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if (part == "token" || part == "reset") && i+1 < len(parts) && parts[i+1] != "" {
			parts[i+1] = "***"
		}
	}
	return strings.Join(parts, "/")
}

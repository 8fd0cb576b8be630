package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/iudanet/apexarenas/internal/client/normalize"
)

// RequestOptions описывает один запрос к backend'у
type RequestOptions struct {
	Body    any         // сериализуется в JSON; nil означает пустое тело
	Headers http.Header // добавляются к заголовкам по умолчанию
	Token   string      // access token для Authorization: Bearer
}

// Request выполняет один JSON запрос и возвращает декодированное тело
// (nil для пустого тела). Любая ошибка возвращается как *RequestError.
// Таймаут отменяется при выходе из функции при любом исходе.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions) (any, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if opts.Body != nil {
		jsonData, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, &RequestError{
				Message: "Failed to encode request.",
				Status:  StatusNetwork,
				Code:    CodeInvalidRequest,
				Err:     err,
			}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, &RequestError{
			Message: "Failed to create request.",
			Status:  StatusNetwork,
			Code:    CodeInvalidRequest,
			Err:     err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range opts.Headers {
		// Заголовок по умолчанию не вытесняется
		if http.CanonicalHeaderKey(key) == "Content-Type" {
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(reqCtx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело как текст, затем разбираем JSON
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(reqCtx, err)
	}

	payload, err := decodePayload(respBody)
	if err != nil {
		return nil, &RequestError{
			Message: "Invalid server response.",
			Status:  http.StatusInternalServerError,
			Code:    CodeBadResponse,
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || normalize.IsExplicitFailure(payload) {
		message := normalize.Message(payload)
		if message == "" {
			message = defaultFailureMessage
		}
		return nil, &RequestError{
			Message: message,
			Status:  resp.StatusCode,
			Code:    normalize.ErrorCode(payload),
		}
	}

	return payload, nil
}

// decodePayload возвращает nil для пустого тела
func decodePayload(body []byte) (any, error) {
	// Только пустое тело дает nil payload
	if len(body) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// transportError переводит ошибку транспорта в *RequestError
func (c *Client) transportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		c.logger.Debug().Dur("timeout", c.timeout).Msg("request timed out")
		return &RequestError{
			Message: "Request timed out.",
			Status:  http.StatusRequestTimeout,
			Code:    CodeRequestTimeout,
			Err:     err,
		}
	}
	return &RequestError{
		Message: "Network error. Please check your connection.",
		Status:  StatusNetwork,
		Code:    CodeNetworkError,
		Err:     err,
	}
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/apexarenas/internal/client/authtest"
	"github.com/iudanet/apexarenas/pkg/api"
)

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(baseURL, opts...)
	require.NoError(t, err)
	return client
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := newTestClient(t, "http://localhost:8080/")

	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.Timeout())
	assert.NotNil(t, client.httpClient.Jar)
	assert.Equal(t, DefaultEndpoints(), client.endpoints)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://example.com", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			client, err := NewClient(raw)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestWithEndpoints_FillsDefaults(t *testing.T) {
	client := newTestClient(t, "http://localhost", WithEndpoints(Endpoints{Login: "/v2/login"}))

	assert.Equal(t, "/v2/login", client.endpoints.Login)
	assert.Equal(t, DefaultEndpoints().Refresh, client.endpoints.Refresh)
}

// TestRequest_Headers проверяет заголовки по умолчанию и заголовки вызывающего
func TestRequest_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, []string{"application/json"}, r.Header.Values("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "abc", r.Header.Get("X-Custom"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"a@b.com"}`, string(body))

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	payload, err := client.Request(context.Background(), http.MethodPost, "/echo", RequestOptions{
		Body:  api.EmailRequest{Email: "a@b.com"},
		Token: "tok-1",
		Headers: http.Header{
			"X-Custom":     []string{"abc"},
			"Content-Type": []string{"text/plain"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, payload)
}

func TestRequest_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	payload, err := client.Request(context.Background(), http.MethodPost, "/", RequestOptions{})

	require.NoError(t, err)
	assert.Nil(t, payload)
}

// TestRequest_Errors проверяет перевод ответов сервера в RequestError
func TestRequest_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantCode    string
		statusCode  int
		wantStatus  int
	}{
		{
			name:        "explicit failure with 200",
			statusCode:  http.StatusOK,
			body:        `{"success":false,"message":"Account locked","code":"LOCKED"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Account locked",
			wantCode:    "LOCKED",
		},
		{
			name:        "backend error object",
			statusCode:  http.StatusUnauthorized,
			body:        `{"success":false,"error":{"code":"INVALID_CREDENTIALS","message":"Invalid email or password."}}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password.",
			wantCode:    "INVALID_CREDENTIALS",
		},
		{
			name:        "error status with empty body",
			statusCode:  http.StatusServiceUnavailable,
			body:        "",
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "Request failed.",
		},
		{
			name:        "malformed json",
			statusCode:  http.StatusOK,
			body:        "<html>oops</html>",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Invalid server response.",
			wantCode:    CodeBadResponse,
		},
		{
			name:        "whitespace only body",
			statusCode:  http.StatusOK,
			body:        "  \n",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Invalid server response.",
			wantCode:    CodeBadResponse,
		},
		{
			name:        "error_code field",
			statusCode:  http.StatusConflict,
			body:        `{"error":"User exists","error_code":"USER_EXISTS"}`,
			wantStatus:  http.StatusConflict,
			wantMessage: "User exists",
			wantCode:    "USER_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			payload, err := client.Request(context.Background(), http.MethodGet, "/", RequestOptions{})

			require.Error(t, err)
			assert.Nil(t, payload)

			reqErr, ok := AsRequestError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, reqErr.Status)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Equal(t, tt.wantCode, reqErr.Code)
		})
	}
}

// TestRequest_Timeout проверяет таймаут и то, что запрос отменяется
func TestRequest_Timeout(t *testing.T) {
	cancelled := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		close(cancelled)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := client.Request(context.Background(), http.MethodGet, "/slow", RequestOptions{})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestTimeout, reqErr.Status)
	assert.Equal(t, CodeRequestTimeout, reqErr.Code)

	// Сервер должен увидеть отмену запроса
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("request was not cancelled on the server side")
	}
}

func TestRequest_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL)
	_, err := client.Request(context.Background(), http.MethodGet, "/", RequestOptions{})

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, StatusNetwork, reqErr.Status)
	assert.Equal(t, CodeNetworkError, reqErr.Code)
	assert.NotNil(t, errors.Unwrap(reqErr))
}

func TestRequest_EncodeError(t *testing.T) {
	client := newTestClient(t, "http://localhost")
	_, err := client.Request(context.Background(), http.MethodPost, "/", RequestOptions{Body: make(chan int)})

	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidRequest, reqErr.Code)
}

// TestClient_Login проверяет успешный логин и нормализацию ответа
func TestClient_Login(t *testing.T) {
	backend := authtest.NewServer(t)
	backend.AddUser(authtest.User{Email: "a@b.com", Username: "alpha", Password: "secret1", Verified: true})

	client := newTestClient(t, backend.URL)
	result, err := client.Login(context.Background(), api.LoginRequest{
		Identifier: "a@b.com",
		Email:      "a@b.com",
		Password:   "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Tokens)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	user, ok := result.User.Get()
	require.True(t, ok)
	assert.Equal(t, "alpha", *user.Username)
	assert.Equal(t, "Login successful.", result.Message)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	backend := authtest.NewServer(t)

	client := newTestClient(t, backend.URL)
	_, err := client.Login(context.Background(), api.LoginRequest{Identifier: "nobody@b.com", Password: "x"})

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, "Invalid email or password.", UserMessage(err))
	assert.Contains(t, err.Error(), "login request failed")
}

func TestClient_RefreshAndValidate(t *testing.T) {
	backend := authtest.NewServer(t)
	backend.AddUser(authtest.User{Email: "a@b.com", Username: "alpha", Verified: true})
	access, refresh, err := backend.IssueTokens("a@b.com")
	require.NoError(t, err)

	client := newTestClient(t, backend.URL)
	ctx := context.Background()

	validated, err := client.ValidateToken(ctx, access)
	require.NoError(t, err)
	assert.Nil(t, validated.Tokens)
	assert.True(t, validated.User.IsSet())

	refreshed, err := client.RefreshToken(ctx, refresh)
	require.NoError(t, err)
	require.NotNil(t, refreshed.Tokens)
	assert.NotEqual(t, refresh, refreshed.Tokens.RefreshToken)

	// Старый refresh token после ротации не действует
	_, err = client.RefreshToken(ctx, refresh)
	assert.True(t, IsAuthError(err))
}

func TestClient_RefreshToken_OmitsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "refreshToken")
		_, _ = w.Write([]byte(`{"tokens":{"accessToken":"cookie-based"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.RefreshToken(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "cookie-based", result.Tokens.AccessToken)
}

// TestClient_SendsCookies проверяет, что cookie сервера отправляются обратно
func TestClient_SendsCookies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh", Value: "cookie-rt", Path: "/"})
		_, _ = w.Write([]byte(`{"accessToken":"A"}`))
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("refresh")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "cookie-rt", cookie.Value)
		_, _ = w.Write([]byte(`{"accessToken":"B"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	_, err := client.Login(ctx, api.LoginRequest{Identifier: "x", Password: "y"})
	require.NoError(t, err)

	result, err := client.RefreshToken(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "B", result.Tokens.AccessToken)
}

func TestClient_StartOAuth(t *testing.T) {
	backend := authtest.NewServer(t)
	client := newTestClient(t, backend.URL)

	redirect, err := client.StartOAuth(context.Background(), "dashboard")
	require.NoError(t, err)
	assert.Contains(t, redirect, "accounts.example.com")
	assert.Contains(t, redirect, "state=dashboard")
}

func TestClient_StartOAuth_NoRedirect(t *testing.T) {
	backend := authtest.NewServer(t)
	backend.Override(authtest.RouteOAuthStart, func(w http.ResponseWriter, r *http.Request) {
		authtest.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	client := newTestClient(t, backend.URL)

	_, err := client.StartOAuth(context.Background(), "")
	assert.Error(t, err)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/auth/login", sanitizePath("/auth/login"))
	assert.Equal(t, "/auth/reset/***", sanitizePath("/auth/reset/abcdef"))
	assert.Equal(t, "/auth/token/***/info", sanitizePath("/auth/token/xyz/info"))
}

// Package authtest содержит поддельный auth backend для тестов клиента.
//
// Сервер повторяет формы ответов настоящего API (обертка data, success:false,
// error.code), выпускает HS256 токены и позволяет подменить любой маршрут.
package authtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// Имена маршрутов для Override и Calls
const (
	RouteRegister      = "register"
	RouteLogin         = "login"
	RouteLogout        = "logout"
	RouteVerifyOTP     = "verify-otp"
	RouteResendOTP     = "resend-otp"
	RoutePasswordReset = "forgot-password"
	RouteRefresh       = "refresh-token"
	RouteValidate      = "validate-token"
	RouteProfile       = "profile"
	RouteOAuthStart    = "google"
)

// ValidOTP принимается поддельным сервером как верный код
const ValidOTP = "123456"

// User описывает учетную запись поддельного сервера
type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	Password string
	Role     string
	Verified bool
}

// Server is a scriptable fake of the auth backend.
type Server struct {
	*httptest.Server

	overrides map[string]http.HandlerFunc
	calls     map[string]int
	users     map[string]*User  // email -> user
	refresh   map[string]string // refresh token -> email
	revoked   map[string]bool   // access tokens после logout
	secret    []byte
	accessTTL time.Duration
	mu        sync.Mutex
}

// NewServer запускает поддельный backend; закрывается через t.Cleanup
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		overrides: make(map[string]http.HandlerFunc),
		calls:     make(map[string]int),
		users:     make(map[string]*User),
		refresh:   make(map[string]string),
		revoked:   make(map[string]bool),
		secret:    []byte("authtest-secret"),
		accessTTL: 15 * time.Minute,
	}
	s.Server = httptest.NewServer(s.Router())
	t.Cleanup(s.Close)

	return s
}

// Router собирает маршруты на chi
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.route(RouteRegister, s.handleRegister))
		r.Post("/login", s.route(RouteLogin, s.handleLogin))
		r.Post("/logout", s.route(RouteLogout, s.handleLogout))
		r.Post("/verify-otp", s.route(RouteVerifyOTP, s.handleVerifyOTP))
		r.Post("/resend-otp", s.route(RouteResendOTP, s.handleEmailAck("Verification code sent.")))
		r.Post("/forgot-password", s.route(RoutePasswordReset, s.handleEmailAck("If the account exists, a password reset link has been sent.")))
		r.Post("/refresh-token", s.route(RouteRefresh, s.handleRefresh))
		r.Post("/validate-token", s.route(RouteValidate, s.handleValidate))
		r.Get("/profile", s.route(RouteProfile, s.handleProfile))
		r.Post("/google", s.route(RouteOAuthStart, s.handleOAuthStart))
	})
	return r
}

// Override подменяет обработчик маршрута
func (s *Server) Override(route string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[route] = h
}

// Calls возвращает количество обращений к маршруту
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// AddUser регистрирует пользователя напрямую
func (s *Server) AddUser(u User) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = newID()
	}
	if u.Role == "" {
		u.Role = "player"
	}
	stored := u
	s.users[u.Email] = &stored
	return &stored
}

// SetAccessTTL задает время жизни выпускаемых access token
func (s *Server) SetAccessTTL(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessTTL = d
}

func (s *Server) route(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[name]++
		override := s.overrides[name]
		s.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		h(w, r)
	}
}

// WriteJSON отправляет JSON ответ; удобно в Override
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError отправляет ответ с ошибкой в формате backend'а
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, map[string]any{
		"success": false,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

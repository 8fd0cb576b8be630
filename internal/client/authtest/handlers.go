package authtest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iudanet/apexarenas/pkg/api"
)

func userJSON(u *User) map[string]any {
	return map[string]any{
		"_id":        u.ID,
		"name":       u.Name,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"isVerified": u.Verified,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Email]; exists {
		WriteError(w, http.StatusConflict, "USER_EXISTS", "An account with this email already exists.")
		return
	}
	user := &User{
		ID:       newID(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	s.users[req.Email] = user

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful. Check your email for the verification code.",
		"data":    map[string]any{"user": userJSON(user)},
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findLocked(req.Identifier)
	if user == nil || user.Password != req.Password {
		WriteError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password.")
		return
	}

	// Неподтвержденный пользователь получает успешный ответ без токенов
	if !user.Verified {
		WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Verification required. A code has been sent to your email.",
			"data":    map[string]any{"email": user.Email},
		})
		return
	}

	access, refresh, err := s.issueLocked(user)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful.",
		"data": map[string]any{
			"accessToken":  access,
			"refreshToken": refresh,
			"user":         userJSON(user),
		},
	})
}

func (s *Server) findLocked(identifier string) *User {
	identifier = strings.TrimSpace(identifier)
	if u, ok := s.users[identifier]; ok {
		return u
	}
	for _, u := range s.users {
		if u.Username == identifier {
			return u
		}
	}
	return nil
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userFromRequestLocked(r); !ok {
		WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated.")
		return
	}
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
	s.revoked[token] = true

	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out."})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[req.Email]
	if !ok || req.OTP != ValidOTP {
		WriteError(w, http.StatusBadRequest, "INVALID_OTP", "Invalid or expired code.")
		return
	}
	user.Verified = true

	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Email verified. You can now sign in."})
}

func (s *Server) handleEmailAck(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.EmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Email is required.")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": message})
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.refresh[req.RefreshToken]
	if !ok {
		WriteError(w, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Session expired. Please sign in again.")
		return
	}
	// Ротация: старый refresh token больше не действует
	delete(s.refresh, req.RefreshToken)

	access, refresh, err := s.issueLocked(s.users[email])
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tokens": map[string]any{
			"access_token":  access,
			"refresh_token": refresh,
		},
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.userFromRequestLocked(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "TOKEN_INVALID", "Token is invalid or expired.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"user": userJSON(user)},
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.userFromRequestLocked(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "TOKEN_INVALID", "Token is invalid or expired.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    userJSON(user),
	})
}

func (s *Server) handleOAuthStart(w http.ResponseWriter, r *http.Request) {
	var req api.OAuthStartRequest
	// Тело опционально
	_ = json.NewDecoder(r.Body).Decode(&req)

	redirect := "https://accounts.example.com/o/oauth2/auth?client_id=apex"
	if req.Next != "" {
		redirect += "&state=" + req.Next
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true, "redirectUrl": redirect})
}

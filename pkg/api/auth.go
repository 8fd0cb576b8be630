package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Username string `json:"username"` // username пользователя
	Email    string `json:"email"`    // email для подтверждения по OTP
	Password string `json:"password"` // пароль в открытом виде (только TLS)
	Role     string `json:"role"`     // player или organizer
}

// LoginRequest представляет запрос на аутентификацию.
// Identifier дублируется в Email или Username в зависимости от формы ввода.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password"`
}

// VerifyOTPRequest представляет запрос на подтверждение email кодом
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// EmailRequest используется для повторной отправки OTP и сброса пароля
type EmailRequest struct {
	Email string `json:"email"`
}

// RefreshRequest представляет запрос на обновление access token.
// Пустой RefreshToken не отправляется: backend может обновить сессию по cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// OAuthStartRequest представляет запрос на старт OAuth через backend
type OAuthStartRequest struct {
	Next string `json:"next,omitempty"` // куда вернуть пользователя после входа
}

package models

// AuthTokens представляет пару токенов сессии.
// Пустой RefreshToken означает, что refresh token отсутствует.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// HasAccessToken сообщает, есть ли в паре пригодный access token
func (t *AuthTokens) HasAccessToken() bool {
	return t != nil && t.AccessToken != ""
}

// AuthUser описывает профиль пользователя, как его вернул backend.
// Все поля опциональны: nil означает "неизвестно", а не пустую строку.
type AuthUser struct {
	ID       *string `json:"id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Verified *bool   `json:"verified,omitempty"`
}

// DisplayName возвращает имя для отображения: name, затем username
func (u *AuthUser) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	if u.Username != nil {
		return *u.Username
	}
	return ""
}

// StoredSession is the durable copy of a session kept in the local slot.
type StoredSession struct {
	Tokens AuthTokens `json:"tokens"`
	User   *AuthUser  `json:"user,omitempty"`
}

// AuthResult is the normalized outcome of a single backend call.
// It is never persisted directly.
type AuthResult struct {
	Tokens  *AuthTokens
	User    UserValue
	Message string
}

// UserValue различает три состояния пользователя:
// не передан, явно очищен и присутствует.
type UserValue struct {
	user    *AuthUser
	present bool
}

// NoUser возвращает значение "пользователь не передан"
func NoUser() UserValue {
	return UserValue{}
}

// ClearedUser возвращает значение "пользователь явно очищен"
func ClearedUser() UserValue {
	return UserValue{present: true}
}

// SomeUser оборачивает известного пользователя
func SomeUser(u *AuthUser) UserValue {
	if u == nil {
		return ClearedUser()
	}
	return UserValue{user: u, present: true}
}

// Get возвращает пользователя и признак того, что значение было передано
func (v UserValue) Get() (*AuthUser, bool) {
	return v.user, v.present
}

// IsSet сообщает, что значение было передано (в том числе явно очищено)
func (v UserValue) IsSet() bool {
	return v.present
}

// Or возвращает fallback только если значение не передано.
// Явно очищенное значение даёт nil.
func (v UserValue) Or(fallback *AuthUser) *AuthUser {
	if !v.present {
		return fallback
	}
	return v.user
}

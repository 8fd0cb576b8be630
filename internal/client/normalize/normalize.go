// Package normalize извлекает каноническую тройку {tokens, user, message}
// из ответов backend'а произвольной формы.
//
// Backend исторически отдаёт токены и профиль под разными именами полей
// (camelCase, snake_case, обёртка data). Все функции пакета принимают
// результат json.Unmarshal в any (или nil) и никогда не паникуют.
package normalize

import (
	"github.com/iudanet/apexarenas/internal/models"
)

// Порядок поиска access token внутри одного объекта
var accessTokenPaths = [][]string{
	{"tokens", "accessToken"},
	{"tokens", "access_token"},
	{"accessToken"},
	{"token"},
}

// Порядок поиска refresh token внутри одного объекта
var refreshTokenPaths = [][]string{
	{"tokens", "refreshToken"},
	{"tokens", "refresh_token"},
	{"refreshToken"},
	{"refresh_token"},
}

// Normalize converts an arbitrary decoded JSON payload into an AuthResult.
// A missing access token yields nil Tokens; callers decide what that means.
func Normalize(payload any) models.AuthResult {
	root, ok := asObject(payload)
	if !ok {
		return models.AuthResult{User: models.NoUser()}
	}

	return models.AuthResult{
		Tokens:  extractTokens(root),
		User:    extractUser(root),
		Message: Message(payload),
	}
}

// IsExplicitFailure сообщает, что payload содержит success === false.
// Не зависит от HTTP статуса.
func IsExplicitFailure(payload any) bool {
	root, ok := asObject(payload)
	if !ok {
		return false
	}
	success, ok := root["success"].(bool)
	return ok && !success
}

// Message извлекает человекочитаемое сообщение:
// message -> error (строка) -> error.message -> data.message
func Message(payload any) string {
	root, ok := asObject(payload)
	if !ok {
		return ""
	}

	if msg, ok := stringAt(root, "message"); ok {
		return msg
	}
	if msg, ok := stringAt(root, "error"); ok {
		return msg
	}
	if msg, ok := stringAt(root, "error", "message"); ok {
		return msg
	}
	if msg, ok := stringAt(root, "data", "message"); ok {
		return msg
	}
	return ""
}

// ErrorCode извлекает код ошибки: error.code -> error_code -> code
func ErrorCode(payload any) string {
	root, ok := asObject(payload)
	if !ok {
		return ""
	}

	if code, ok := stringAt(root, "error", "code"); ok {
		return code
	}
	if code, ok := stringAt(root, "error_code"); ok {
		return code
	}
	if code, ok := stringAt(root, "code"); ok {
		return code
	}
	return ""
}

// RedirectURL извлекает адрес перенаправления из ответа на старт OAuth:
// url -> redirectUrl -> data.url -> data.redirectUrl
func RedirectURL(payload any) string {
	root, ok := asObject(payload)
	if !ok {
		return ""
	}

	for _, path := range [][]string{
		{"url"},
		{"redirectUrl"},
		{"data", "url"},
		{"data", "redirectUrl"},
	} {
		if u, ok := stringAt(root, path...); ok {
			return u
		}
	}
	return ""
}

func extractTokens(root map[string]any) *models.AuthTokens {
	access, refresh := tokensIn(root)

	// Часть ответов оборачивает токены в data
	if access == "" {
		if data, ok := asObject(root["data"]); ok {
			access, refresh = tokensIn(data)
		}
	}

	if access == "" {
		return nil
	}
	return &models.AuthTokens{AccessToken: access, RefreshToken: refresh}
}

func tokensIn(obj map[string]any) (access, refresh string) {
	access = firstString(obj, accessTokenPaths)
	refresh = firstString(obj, refreshTokenPaths)
	return access, refresh
}

func firstString(obj map[string]any, paths [][]string) string {
	for _, path := range paths {
		if s, ok := stringAt(obj, path...); ok {
			return s
		}
	}
	return ""
}

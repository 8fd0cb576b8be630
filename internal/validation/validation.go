package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Сообщения совпадают с текстами форм веб-клиента
const (
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Invalid email."
	MsgPasswordRequired = "Password is required."
	MsgPasswordShort    = "At least 6 characters."
)

var (
	// EmailPattern - минимальная проверка формата email
	EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// UsernamePattern определяет допустимый формат username
	// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
	// Длина: 3-32 символа
	UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

	// OTPPattern - код подтверждения из 4-8 цифр
	OTPPattern = regexp.MustCompile(`^[0-9]{4,8}$`)
)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxNameLen максимальная длина отображаемого имени
	MaxNameLen = 64
)

// Роли, доступные при регистрации
const (
	RolePlayer    = "player"
	RoleOrganizer = "organizer"
)

// NormalizeIdentifier приводит email или username к каноничному виду:
// NFKC и обрезка пробелов. Email дополнительно приводится к нижнему регистру.
func NormalizeIdentifier(s string) string {
	s = strings.TrimSpace(norm.NFKC.String(s))
	if strings.Contains(s, "@") {
		return strings.ToLower(s)
	}
	return s
}

// ValidateEmail проверяет email
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New(MsgEmailRequired)
	}
	if !EmailPattern.MatchString(email) {
		return errors.New(MsgEmailInvalid)
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New(MsgPasswordRequired)
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return errors.New(MsgPasswordShort)
	}
	return nil
}

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidateName проверяет отображаемое имя
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}
	return nil
}

// ValidateRole проверяет роль при регистрации
func ValidateRole(role string) error {
	switch role {
	case RolePlayer, RoleOrganizer:
		return nil
	default:
		return fmt.Errorf("role must be %q or %q", RolePlayer, RoleOrganizer)
	}
}

// ValidateOTP проверяет код подтверждения
func ValidateOTP(code string) error {
	if !OTPPattern.MatchString(strings.TrimSpace(code)) {
		return fmt.Errorf("code must be 4 to 8 digits")
	}
	return nil
}

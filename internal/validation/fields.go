package validation

import (
	"sort"
	"strings"
)

// FieldErrors собирает ошибки формы: поле -> сообщение.
// Для каждого поля сохраняется первая ошибка.
type FieldErrors map[string]string

// Check добавляет ошибку поля, если err не nil
func (f FieldErrors) Check(field string, err error) {
	if err == nil {
		return
	}
	if _, exists := f[field]; !exists {
		f[field] = err.Error()
	}
}

// Err возвращает nil, если ошибок нет
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+f[field])
	}
	return strings.Join(parts, "; ")
}

// Login проверяет форму входа
func Login(identifier, password string) error {
	errs := FieldErrors{}
	// Пустой идентификатор сообщается как отсутствующий email
	if identifier == "" || strings.Contains(identifier, "@") {
		errs.Check("email", ValidateEmail(identifier))
	} else {
		errs.Check("username", ValidateUsername(identifier))
	}
	errs.Check("password", ValidatePassword(password))
	return errs.Err()
}

// Registration проверяет форму регистрации
func Registration(name, username, email, password, role string) error {
	errs := FieldErrors{}
	errs.Check("name", ValidateName(name))
	errs.Check("username", ValidateUsername(username))
	errs.Check("email", ValidateEmail(email))
	errs.Check("password", ValidatePassword(password))
	errs.Check("role", ValidateRole(role))
	return errs.Err()
}

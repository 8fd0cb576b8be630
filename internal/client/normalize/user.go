package normalize

import (
	"github.com/iudanet/apexarenas/internal/models"
)

// extractUser ищет профиль: user -> data.user -> сам data.
// data считается профилем только если в нём нашлось хотя бы одно поле профиля,
// иначе обёртка с одними токенами превращалась бы в пустого пользователя.
func extractUser(root map[string]any) models.UserValue {
	if obj, ok := asObject(root["user"]); ok {
		return models.SomeUser(userFrom(obj))
	}

	data, ok := asObject(root["data"])
	if !ok {
		return models.NoUser()
	}

	if obj, ok := asObject(data["user"]); ok {
		return models.SomeUser(userFrom(obj))
	}

	// data только с токенами не пользователь: при слиянии в Init пустой
	// SomeUser заменил бы сохраненного пользователя
	if u := userFrom(data); !isEmptyUser(u) {
		return models.SomeUser(u)
	}

	return models.NoUser()
}

// userFrom читает поля профиля разрешительно: id -> _id, verified -> isVerified.
// Значения неподходящих типов отбрасываются, а не приводятся.
func userFrom(obj map[string]any) *models.AuthUser {
	u := &models.AuthUser{}

	if id, ok := stringAt(obj, "id"); ok {
		u.ID = &id
	} else if id, ok := stringAt(obj, "_id"); ok {
		u.ID = &id
	}
	if name, ok := stringAt(obj, "name"); ok {
		u.Name = &name
	}
	if username, ok := stringAt(obj, "username"); ok {
		u.Username = &username
	}
	if email, ok := stringAt(obj, "email"); ok {
		u.Email = &email
	}
	if role, ok := stringAt(obj, "role"); ok {
		u.Role = &role
	}
	if verified, ok := boolAt(obj, "verified"); ok {
		u.Verified = &verified
	} else if verified, ok := boolAt(obj, "isVerified"); ok {
		u.Verified = &verified
	}

	return u
}

func isEmptyUser(u *models.AuthUser) bool {
	return u.ID == nil && u.Name == nil && u.Username == nil &&
		u.Email == nil && u.Role == nil && u.Verified == nil
}

// UserFromObject читает профиль из произвольного значения.
// Возвращает false, если значение не является JSON-объектом.
func UserFromObject(v any) (*models.AuthUser, bool) {
	obj, ok := asObject(v)
	if !ok {
		return nil, false
	}
	return userFrom(obj), true
}

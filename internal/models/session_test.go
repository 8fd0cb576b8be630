package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValue(t *testing.T) {
	fallback := &AuthUser{Name: ptr("Fallback")}
	known := &AuthUser{Name: ptr("Known")}

	tests := []struct {
		name    string
		value   UserValue
		want    *AuthUser
		wantSet bool
	}{
		{name: "absent uses fallback", value: NoUser(), want: fallback, wantSet: false},
		{name: "cleared ignores fallback", value: ClearedUser(), want: nil, wantSet: true},
		{name: "present", value: SomeUser(known), want: known, wantSet: true},
		{name: "nil is cleared", value: SomeUser(nil), want: nil, wantSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Or(fallback))
			assert.Equal(t, tt.wantSet, tt.value.IsSet())
		})
	}
}

func TestAuthTokens_HasAccessToken(t *testing.T) {
	var nilTokens *AuthTokens
	assert.False(t, nilTokens.HasAccessToken())
	assert.False(t, (&AuthTokens{RefreshToken: "R1"}).HasAccessToken())
	assert.True(t, (&AuthTokens{AccessToken: "A1"}).HasAccessToken())
}

func TestAuthUser_DisplayName(t *testing.T) {
	var nilUser *AuthUser
	assert.Empty(t, nilUser.DisplayName())
	assert.Equal(t, "ann", (&AuthUser{Username: ptr("ann")}).DisplayName())
	assert.Equal(t, "ann", (&AuthUser{Name: ptr(""), Username: ptr("ann")}).DisplayName())
	assert.Equal(t, "Ann", (&AuthUser{Name: ptr("Ann"), Username: ptr("ann")}).DisplayName())
}

func TestStoredSession_JSON(t *testing.T) {
	verified := false
	session := StoredSession{
		Tokens: AuthTokens{AccessToken: "A1"},
		User:   &AuthUser{ID: ptr("u1"), Verified: &verified},
	}

	data, err := json.Marshal(session)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tokens":{"accessToken":"A1"},"user":{"id":"u1","verified":false}}`, string(data))

	data, err = json.Marshal(StoredSession{Tokens: AuthTokens{AccessToken: "A1", RefreshToken: "R1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tokens":{"accessToken":"A1","refreshToken":"R1"}}`, string(data))
}

func ptr(s string) *string { return &s }

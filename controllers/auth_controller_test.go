package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "secret123", "displayName": "X", "role": "editor"}},
		{"bad email", gin.H{"email": "nope", "password": "secret123", "displayName": "X", "role": "editor"}},
		{"short password", gin.H{"email": "x@y.fr", "password": "12345", "displayName": "X", "role": "editor"}},
		{"empty display name", gin.H{"email": "x@y.fr", "password": "secret123", "role": "editor"}},
		{"unknown role", gin.H{"email": "x@y.fr", "password": "secret123", "displayName": "X", "role": "janitor"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "claire@lesmarvelous.fr", "manager")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":       "claire@lesmarvelous.fr",
		"password":    "secret123",
		"displayName": "Claire",
		"role":        "manager",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode(t, w)["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "claire@lesmarvelous.fr", "manager")

	// Correct email, wrong password: same response as an unknown email.
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "claire@lesmarvelous.fr",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@lesmarvelous.fr",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])
}

func TestLoginAndMe(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "claire@lesmarvelous.fr", "manager")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "claire@lesmarvelous.fr",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "claire@lesmarvelous.fr", user["email"])
	assert.NotContains(t, user, "password")

	token := body["token"].(string)
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "claire@lesmarvelous.fr", decode(t, w)["email"])

	// Same handler behind /api/users/me.
	w = doJSON(t, r, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserListIsAdminOnly(t *testing.T) {
	r := newTestRouter(t)
	editor := registerAndLogin(t, r, "ed@lesmarvelous.fr", "editor")
	admin := registerAndLogin(t, r, "boss@lesmarvelous.fr", "admin")

	w := doJSON(t, r, http.MethodGet, "/api/users", editor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authResponse struct {
	Token string `json:"token"`
}

func TestAuthLoginWithSeededAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "seuEmail@gmail.com",
		"senha": "123456",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "seuEmail@gmail.com",
		"senha": "errada",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "ninguem@example.com",
		"senha": "123456",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateSenhaRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPut, "/Logins/UpdateSenha", map[string]interface{}{
		"senha": "nova-senha",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateSenhaRekeysAuthenticatedLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "seuEmail@gmail.com",
		"senha": "123456",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp authResponse
	decodeBody(t, w, &resp)

	headers := map[string]string{"Authorization": "Bearer " + resp.Token}
	w = performRequest(t, r, http.MethodPut, "/Logins/UpdateSenha", map[string]interface{}{
		"senha": "nova-senha",
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Body.String())

	w = performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "seuEmail@gmail.com",
		"senha": "123456",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "old password must stop working")

	w = performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "seuEmail@gmail.com",
		"senha": "nova-senha",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSenhaRejectsEmptyPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Auth/Login", map[string]interface{}{
		"email": "seuEmail@gmail.com",
		"senha": "123456",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp authResponse
	decodeBody(t, w, &resp)

	headers := map[string]string{"Authorization": "Bearer " + resp.Token}
	w = performRequest(t, r, http.MethodPut, "/Logins/UpdateSenha", map[string]interface{}{
		"senha": "",
	}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

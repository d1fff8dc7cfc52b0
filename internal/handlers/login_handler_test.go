package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

func loginPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"nome":      "Maria",
		"sobrenome": "Silva",
		"email":     email,
		"dataNasc":  "1990-05-10T00:00:00Z",
		"tipoConta": "Municipe",
		"senha":     "segredo123",
	}
}

func TestAddLoginStripsPlaintextAndStoresHash(t *testing.T) {
	r, db := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("maria@example.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Login
	decodeBody(t, w, &created)
	require.NotZero(t, created.IDPessoa)
	assert.Empty(t, created.Senha)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEmpty(t, created.PasswordSalt)
	assert.Equal(t, fmt.Sprintf("/Logins/GetById?id=%d", created.IDPessoa), w.Header().Get("Location"))

	var stored models.Login
	require.NoError(t, db.First(&stored, created.IDPessoa).Error)
	assert.Empty(t, stored.Senha)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordSalt)
}

func TestAddLoginDuplicateEmailConflicts(t *testing.T) {
	r, db := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("dup@example.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var before int64
	require.NoError(t, db.Model(&models.Login{}).Count(&before).Error)

	w = performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("dup@example.com"), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var after int64
	require.NoError(t, db.Model(&models.Login{}).Count(&after).Error)
	assert.Equal(t, before, after, "conflict must not create a duplicate")
}

func TestAddLoginEmptyPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := loginPayload("nopass@example.com")
	payload["senha"] = ""
	w := performRequest(t, r, http.MethodPost, "/Logins/Add", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// A failing duplicate-email lookup must stop the request at the pre-check,
// not fall through to an insert.
func TestAddLoginLookupFailureIsServerError(t *testing.T) {
	r, db := newTestRouter(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("indisponivel@example.com"), nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp helpers.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Error checking existing login.", resp.Message)
}

func TestAddLoginSamePasswordDistinctSalts(t *testing.T) {
	r, db := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("primeira@example.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("segunda@example.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var first, second models.Login
	require.NoError(t, db.Where("email = ?", "primeira@example.com").First(&first).Error)
	require.NoError(t, db.Where("email = ?", "segunda@example.com").First(&second).Error)

	assert.NotEqual(t, first.PasswordSalt, second.PasswordSalt)
	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
}

func TestGetLoginByEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/Logins/GetByEmail?email=seuEmail@gmail.com", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login models.Login
	decodeBody(t, w, &login)
	assert.EqualValues(t, 1, login.IDPessoa)

	w = performRequest(t, r, http.MethodGet, "/Logins/GetByEmail?email=ninguem@example.com", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLoginCopiesProfileFieldsOnly(t *testing.T) {
	r, db := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("perfil@example.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Login
	decodeBody(t, w, &created)

	var before models.Login
	require.NoError(t, db.First(&before, created.IDPessoa).Error)

	w = performRequest(t, r, http.MethodPut, fmt.Sprintf("/Logins/Update?id=%d", created.IDPessoa), map[string]interface{}{
		"idPessoa":  created.IDPessoa,
		"nome":      "Mariana",
		"sobrenome": "Souza",
		"email":     "perfil@example.com",
		"dataNasc":  "1990-05-10T00:00:00Z",
		"tipoConta": "Organizador",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Login
	require.NoError(t, db.First(&after, created.IDPessoa).Error)
	assert.Equal(t, "Mariana", after.Nome)
	assert.Equal(t, models.AccountOrganizador, after.TipoConta)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "profile update must not touch the password")
	assert.Equal(t, before.PasswordSalt, after.PasswordSalt)
}

func TestUpdateLoginIDMismatch(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPut, "/Logins/Update?id=1", map[string]interface{}{
		"idPessoa": 2,
		"nome":     "Impostor",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Logins/Add", loginPayload("apagar@example.com"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Login
	decodeBody(t, w, &created)

	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/Logins/Delete?id=%d", created.IDPessoa), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodGet, fmt.Sprintf("/Logins/GetById?id=%d", created.IDPessoa), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, r, http.MethodDelete, "/Logins/Delete?id=999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bairroconnect/api/internal/models"
)

func TestGetAllCategoriasReturnsSeeds(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/Categoria/GetAll", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categorias []models.Category
	decodeBody(t, w, &categorias)
	require.Len(t, categorias, 7)

	ids := make(map[uint]bool)
	for _, cat := range categorias {
		ids[cat.IDCategoria] = true
	}
	for _, want := range []uint{1, 2, 3, 4, 5, 7, 8} {
		assert.True(t, ids[want], "seed category %d missing", want)
	}
	assert.False(t, ids[6], "category 6 must not exist")
}

func TestCategoriaLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/Categoria/Add", map[string]interface{}{
		"nomeCategoria": "Teste",
		"descricao":     "x",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Category
	decodeBody(t, w, &created)
	require.NotZero(t, created.IDCategoria)
	assert.Equal(t, "Teste", created.NomeCategoria)
	assert.Equal(t, fmt.Sprintf("/Categoria/GetById?id=%d", created.IDCategoria), w.Header().Get("Location"))

	path := fmt.Sprintf("/Categoria/GetById?id=%d", created.IDCategoria)
	w = performRequest(t, r, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Category
	decodeBody(t, w, &fetched)
	assert.Equal(t, created, fetched)

	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/Categoria/Delete?id=%d", created.IDCategoria), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategoriaByIDNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/Categoria/GetById?id=999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, r, http.MethodGet, "/Categoria/GetById?id=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategoriaIDMismatch(t *testing.T) {
	r, db := newTestRouter(t)

	w := performRequest(t, r, http.MethodPut, "/Categoria/Update?id=1", map[string]interface{}{
		"idCategoria":   2,
		"nomeCategoria": "Renomeada",
		"descricao":     "x",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var categoria models.Category
	require.NoError(t, db.First(&categoria, 1).Error)
	assert.Equal(t, "Esportivo", categoria.NomeCategoria, "mismatched update must not mutate")
}

func TestUpdateCategoriaReplacesRecord(t *testing.T) {
	r, db := newTestRouter(t)

	w := performRequest(t, r, http.MethodPut, "/Categoria/Update?id=2", map[string]interface{}{
		"idCategoria":   2,
		"nomeCategoria": "Shows",
		"descricao":     "Shows e festivais.",
	}, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var categoria models.Category
	require.NoError(t, db.First(&categoria, 2).Error)
	assert.Equal(t, "Shows", categoria.NomeCategoria)
	assert.Equal(t, "Shows e festivais.", categoria.Descricao)
}

func TestUpdateCategoriaNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodPut, "/Categoria/Update?id=999", map[string]interface{}{
		"idCategoria":   999,
		"nomeCategoria": "Fantasma",
		"descricao":     "x",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoriaNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := performRequest(t, r, http.MethodDelete, "/Categoria/Delete?id=999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ErikSvanes/flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("encodes with status and content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		sets := []models.Set{{ID: "s1", Name: "Biology", Cards: []models.Card{}}}

		n, err := WriteJSON(w, sets, http.StatusCreated)
		require.NoError(t, err)

		assert.Equal(t, w.Body.Len(), n)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `[{"id":"s1","name":"Biology","cards":[],"parentId":""}]`, w.Body.String())
	})

	t.Run("unencodable value answers 500", func(t *testing.T) {
		w := httptest.NewRecorder()

		_, err := WriteJSON(w, make(chan int), http.StatusOK)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	decode := func(body string) (models.SetUpdate, error) {
		var update models.SetUpdate
		r := httptest.NewRequest(http.MethodPut, "/api/sets/s1", strings.NewReader(body))
		return update, DecodeJSON(r, &update)
	}

	update, err := decode(`{"name":"Chemistry"}`)
	require.NoError(t, err)
	require.NotNil(t, update.Name)
	assert.Equal(t, "Chemistry", *update.Name)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.ParentID)

	_, err = decode(`{"owner":"someone"}`)
	assert.Error(t, err, "unknown fields are rejected")

	_, err = decode(`{"name":`)
	assert.Error(t, err)
}

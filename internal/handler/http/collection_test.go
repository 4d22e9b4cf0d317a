package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ErikSvanes/flashcards/internal/app"
	"github.com/ErikSvanes/flashcards/internal/service"
	"github.com/ErikSvanes/flashcards/internal/store"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestListSets(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.collection.EXPECT().GetSets(gomock.Any(), "u1").Return([]models.Set{
		{ID: "s1", Name: "Bio", Cards: []models.Card{{ID: "c1", Term: "cell"}}},
	}, nil)

	rec := httptest.NewRecorder()
	h.listSets(rec, newRequest(http.MethodGet, "/api/sets", "", "u1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var sets []models.Set
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sets))
	assert.Equal(t, []models.Set{{ID: "s1", Name: "Bio", Cards: []models.Card{{ID: "c1", Term: "cell"}}}}, sets)
}

func TestListEmptyCollectionIsArray(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.collection.EXPECT().GetSets(gomock.Any(), "u1").Return(nil, nil)
	mocks.collection.EXPECT().GetFolders(gomock.Any(), "u1").Return(nil, nil)

	rec := httptest.NewRecorder()
	h.listSets(rec, newRequest(http.MethodGet, "/api/sets", "", "u1", nil))
	assert.Equal(t, "[]", rec.Body.String())

	rec = httptest.NewRecorder()
	h.listFolders(rec, newRequest(http.MethodGet, "/api/folders", "", "u1", nil))
	assert.Equal(t, "[]", rec.Body.String())
}

func TestUpsertSet_PassesPresentFields(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.collection.EXPECT().
		UpsertSet(gomock.Any(), "u1", "s1", models.SetUpdate{ParentID: strPtr("")}).
		Return(nil)

	rec := httptest.NewRecorder()
	h.upsertSet(rec, newRequest(http.MethodPut, "/api/sets/s1", `{"parentId":""}`, "u1", map[string]string{"setID": "s1"}))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpsertCard(t *testing.T) {
	params := map[string]string{"setID": "s1", "cardID": "c1"}

	t.Run("id taken from path", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.collection.EXPECT().
			UpsertCard(gomock.Any(), "u1", "s1", models.Card{ID: "c1", Term: "t", Definition: "d"}).
			Return(nil)

		rec := httptest.NewRecorder()
		h.upsertCard(rec, newRequest(http.MethodPut, "/api/sets/s1/cards/c1", `{"term":"t","definition":"d"}`, "u1", params))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("mismatched body id", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.upsertCard(rec, newRequest(http.MethodPut, "/api/sets/s1/cards/c1", `{"id":"c2","term":"t"}`, "u1", params))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("set missing", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.collection.EXPECT().UpsertCard(gomock.Any(), "u1", "s1", gomock.Any()).
			Return(errors.Join(errors.New("upsert card"), store.ErrParentNotFound))

		rec := httptest.NewRecorder()
		h.upsertCard(rec, newRequest(http.MethodPut, "/api/sets/s1/cards/c1", `{"term":"t"}`, "u1", params))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgParentNotFound, strings.TrimSpace(rec.Body.String()))
	})
}

func TestDeletes(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(m testServices)
		call   func(h *Handler, w http.ResponseWriter, r *http.Request)
		params map[string]string
	}{
		{
			name:   "set",
			setup:  func(m testServices) { m.collection.EXPECT().DeleteSet(gomock.Any(), "u1", "s1").Return(nil) },
			call:   (*Handler).deleteSet,
			params: map[string]string{"setID": "s1"},
		},
		{
			name:   "card",
			setup:  func(m testServices) { m.collection.EXPECT().DeleteCard(gomock.Any(), "u1", "s1", "c1").Return(nil) },
			call:   (*Handler).deleteCard,
			params: map[string]string{"setID": "s1", "cardID": "c1"},
		},
		{
			name:   "folder",
			setup:  func(m testServices) { m.collection.EXPECT().DeleteFolder(gomock.Any(), "u1", "f1").Return(nil) },
			call:   (*Handler).deleteFolder,
			params: map[string]string{"folderID": "f1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			tt.setup(mocks)

			rec := httptest.NewRecorder()
			tt.call(h, rec, newRequest(http.MethodDelete, "/", "", "u1", tt.params))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestCollection_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "validation", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantBody: app.MsgInvalidDataProvided},
		{name: "foreign row", err: store.ErrEntityNotFound, wantStatus: http.StatusForbidden, wantBody: app.MsgAccessDenied},
		{name: "database", err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError, wantBody: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.collection.EXPECT().UpsertFolder(gomock.Any(), "u1", "f1", gomock.Any()).Return(tt.err)

			rec := httptest.NewRecorder()
			h.upsertFolder(rec, newRequest(http.MethodPut, "/api/folders/f1", `{"name":"x"}`, "u1", map[string]string{"folderID": "f1"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestCollection_NoUserID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.listFolders(rec, newRequest(http.MethodGet, "/api/folders", "", "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoUserIDProvided, strings.TrimSpace(rec.Body.String()))
}

func TestCollection_InvalidBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.upsertSet(rec, newRequest(http.MethodPut, "/api/sets/s1", `{"name":1}`, "u1", map[string]string{"setID": "s1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

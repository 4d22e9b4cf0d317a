package http

import (
	"net/http"

	"github.com/ErikSvanes/flashcards/internal/app"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/utils"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.listSets")
	if !ok {
		return
	}

	sets, err := h.services.CollectionService.GetSets(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, "*Handler.listSets", err)
		return
	}
	if sets == nil {
		sets = []models.Set{}
	}

	utils.WriteJSON(w, sets, http.StatusOK)
}

func (h *Handler) upsertSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.upsertSet")
	if !ok {
		return
	}

	var fields models.SetUpdate
	if !h.decode(w, r, "*Handler.upsertSet", &fields) {
		return
	}

	if err := h.services.CollectionService.UpsertSet(r.Context(), userID, chi.URLParam(r, "setID"), fields); err != nil {
		h.respondError(w, r, "*Handler.upsertSet", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.deleteSet")
	if !ok {
		return
	}

	if err := h.services.CollectionService.DeleteSet(r.Context(), userID, chi.URLParam(r, "setID")); err != nil {
		h.respondError(w, r, "*Handler.deleteSet", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// upsertCard takes the card id from the path. A body id that disagrees with
// it is rejected.
func (h *Handler) upsertCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.upsertCard")
	if !ok {
		return
	}

	var card models.Card
	if !h.decode(w, r, "*Handler.upsertCard", &card) {
		return
	}

	cardID := chi.URLParam(r, "cardID")
	if card.ID != "" && card.ID != cardID {
		logger.FromRequest(r).Error().
			Str("func", "*Handler.upsertCard").
			Str("path_card_id", cardID).
			Str("body_card_id", card.ID).
			Msg("card id mismatch")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	card.ID = cardID

	if err := h.services.CollectionService.UpsertCard(r.Context(), userID, chi.URLParam(r, "setID"), card); err != nil {
		h.respondError(w, r, "*Handler.upsertCard", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.deleteCard")
	if !ok {
		return
	}

	err := h.services.CollectionService.DeleteCard(r.Context(), userID, chi.URLParam(r, "setID"), chi.URLParam(r, "cardID"))
	if err != nil {
		h.respondError(w, r, "*Handler.deleteCard", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.listFolders")
	if !ok {
		return
	}

	folders, err := h.services.CollectionService.GetFolders(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, "*Handler.listFolders", err)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	utils.WriteJSON(w, folders, http.StatusOK)
}

func (h *Handler) upsertFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.upsertFolder")
	if !ok {
		return
	}

	var fields models.FolderUpdate
	if !h.decode(w, r, "*Handler.upsertFolder", &fields) {
		return
	}

	if err := h.services.CollectionService.UpsertFolder(r.Context(), userID, chi.URLParam(r, "folderID"), fields); err != nil {
		h.respondError(w, r, "*Handler.upsertFolder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteFolder removes the folder with its whole subtree.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.deleteFolder")
	if !ok {
		return
	}

	if err := h.services.CollectionService.DeleteFolder(r.Context(), userID, chi.URLParam(r, "folderID")); err != nil {
		h.respondError(w, r, "*Handler.deleteFolder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, funcName string) (string, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Str("func", funcName).Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return "", false
	}
	return userID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, funcName string, v any) bool {
	if err := utils.DecodeJSON(r, v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

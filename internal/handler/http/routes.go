package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// collection of the token owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sets", h.listSets)
		r.Put("/api/sets/{setID}", h.upsertSet)
		r.Delete("/api/sets/{setID}", h.deleteSet)
		r.Put("/api/sets/{setID}/cards/{cardID}", h.upsertCard)
		r.Delete("/api/sets/{setID}/cards/{cardID}", h.deleteCard)

		r.Get("/api/folders", h.listFolders)
		r.Put("/api/folders/{folderID}", h.upsertFolder)
		r.Delete("/api/folders/{folderID}", h.deleteFolder)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withRequestID, h.withLogging, withGZip)

	// public routes; a valid session only marks favourites
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Post("/user/login", h.login)
		r.Get("/user/logout/json", h.logout)
		r.Get("/article/list/{page}/json", h.articles)
		r.Get("/user_article/list/{page}/json", h.square)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/user/lg/userinfo/json", h.userInfo)
		r.Get("/lg/collect/list/{page}/json", h.favorites)
		r.Get("/message/lg/readed_list/{page}/json", h.readMessages)
		r.Post("/lg/collect/{id}/json", h.collect)
		r.Post("/lg/uncollect_originId/{id}/json", h.uncollect)
	})

	// test controls
	router.Post("/stub/expire", h.expireSessions)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

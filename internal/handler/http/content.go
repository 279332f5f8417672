package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feed-client/internal/backend"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
)

func (h *Handler) articles(w http.ResponseWriter, r *http.Request) {
	page, ok := intParam(w, r, "page")
	if !ok {
		return
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())
	data, err := h.backend.Articles(page, userID)
	respond(w, r, data, err)
}

func (h *Handler) square(w http.ResponseWriter, r *http.Request) {
	page, ok := intParam(w, r, "page")
	if !ok {
		return
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())
	data, err := h.backend.Square(page, userID)
	respond(w, r, data, err)
}

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	page, ok := intParam(w, r, "page")
	if !ok {
		return
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())
	data, err := h.backend.Favorites(userID, page)
	respond(w, r, data, err)
}

func (h *Handler) readMessages(w http.ResponseWriter, r *http.Request) {
	page, ok := intParam(w, r, "page")
	if !ok {
		return
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())
	data, err := h.backend.ReadMessages(userID, page)
	respond(w, r, data, err)
}

func (h *Handler) userInfo(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	data, err := h.backend.UserInfo(userID)
	respond(w, r, data, err)
}

func (h *Handler) collect(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())
	if err := h.backend.Collect(userID, int64(id)); err != nil {
		writeError(w, r, err)
		return
	}
	writeData[any](w, r, nil)
}

func (h *Handler) uncollect(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())
	if err := h.backend.Uncollect(userID, int64(id)); err != nil {
		writeError(w, r, err)
		return
	}
	writeData[any](w, r, nil)
}

// expireSessions drops every live session so the next authenticated call
// of any client has to log in again.
func (h *Handler) expireSessions(w http.ResponseWriter, r *http.Request) {
	n := h.backend.ExpireSessions()
	writeData(w, r, map[string]int{"expired": n})
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, ErrInvalidPathParam)
		return 0, false
	}
	return v, true
}

// respond writes the result of a backend call.
func respond[T any](w http.ResponseWriter, r *http.Request, data T, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, data)
}

func writeData[T any](w http.ResponseWriter, r *http.Request, data T) {
	if _, err := utils.WriteEnvelope(w, data, backend.CodeSuccess, ""); err != nil {
		logger.FromContext(r.Context()).Err(err).Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := envelopeFromError(err)
	if msg == internalErrorMsg {
		logger.FromContext(r.Context()).Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	if _, werr := utils.WriteEnvelope[any](w, nil, code, msg); werr != nil {
		logger.FromContext(r.Context()).Err(werr).Msg("error writing response")
	}
}

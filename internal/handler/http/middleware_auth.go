package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed-client/internal/backend"
	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
)

// sessionCookieName is the cookie the session token is mirrored into.
const sessionCookieName = "token_pass"

// auth rejects requests without a live session. Depending on the server
// mode the rejection is the -1001 envelope or a bare HTTP 401. On success
// the user id is stored under [utils.UserIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, err := h.backend.Authenticate(tokenFromRequest(r))
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("session rejected")
			if h.status401 {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			writeError(w, r, backend.ErrNeedLogin)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// optionalAuth attaches the user id when the request carries a live
// session and lets guests through otherwise.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := h.backend.Authenticate(tokenFromRequest(r)); err == nil {
			r = r.WithContext(utils.WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest prefers the bearer header and falls back to the session
// cookie.
func tokenFromRequest(r *http.Request) string {
	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		return token
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-feed-client/internal/logger"
	"github.com/MKhiriev/go-feed-client/internal/utils"
)

const userNameCookieName = "loginUserName"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		writeError(w, r, ErrMissingCredentials)
		return
	}

	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if username == "" || password == "" {
		writeError(w, r, ErrMissingCredentials)
		return
	}

	result, err := h.backend.Login(username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("login failed")
		writeError(w, r, err)
		return
	}

	expires := h.clock.Now().Add(time.Duration(h.tokenTTL) * time.Second)
	for _, c := range [][2]string{
		{sessionCookieName, result.Token},
		{userNameCookieName, username},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     c[0],
			Value:    c[1],
			Path:     "/",
			Expires:  expires,
			MaxAge:   h.tokenTTL,
			HttpOnly: true,
		})
	}

	log.Debug().Int64("id", result.ID).Msg("user successfully logged in")
	writeData(w, r, result)
}

// logout always succeeds and clears the session cookies.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.backend.Logout(tokenFromRequest(r))

	for _, name := range []string{sessionCookieName, userNameCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}

	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		logger.FromContext(r.Context()).Debug().Int64("id", userID).Msg("user logged out")
	}
	writeData[any](w, r, nil)
}

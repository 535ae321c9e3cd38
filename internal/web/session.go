package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "toolbox_session"

// sessionKey returns the request's session key, minting a new one and
// setting the cookie when the browser doesn't present one yet.
func sessionKey(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	key := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    key,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}

package middleware

import (
	"net/http"

	"venue-booking/pkg/utils"

	"github.com/google/uuid"
)

const browsingSessionCookie = "vb_session"

// BrowsingSession assigns every client a browsing-session id carried in a
// cookie. The id keys the in-progress booking draft; it is independent of
// login, so an anonymous visitor can build a draft before authenticating.
func BrowsingSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string

			cookie, err := r.Cookie(browsingSessionCookie)
			if err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     browsingSessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := utils.SetSessionContext(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

// CSRFCookie issues the anti-forgery cookie and exposes the matching token
// in the X-CSRF-Token header for the SPA to echo back on unsafe requests.
func CSRFCookie(rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		_ = rnd.JSON(w, http.StatusOK, map[string]string{"detail": "CSRF cookie set"})
	}
}

// SPAFallback serves the client shell for every path outside /api and
// /admin. The SPA router takes it from there.
func SPAFallback(indexPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, indexPath)
	}
}

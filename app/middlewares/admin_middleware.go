package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/nodirbekm/koreancosmetics/app/utils/sessions"
)

// AdminAuthMiddleware gates the console behind a session login with the
// admin role.
func AdminAuthMiddleware(userRepo repositories.UserRepository, sessionStore sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetAdminUserID(r)
			if userID == 0 {
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Please log in to access the admin console."), http.StatusFound)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: error finding user %d: %v", userID, err)
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Session is no longer valid."), http.StatusFound)
				return
			}

			if user.Role != models.RoleAdmin {
				log.Printf("AdminAuthMiddleware: user %d (%s) attempted to access the console without admin role", user.ID, user.Email)
				http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("You do not have permission to access this page."), http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

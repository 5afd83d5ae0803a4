package admin

import (
	"log"
	"net/http"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/nodirbekm/koreancosmetics/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepository
	sessionStore sessions.Store
}

func NewAuthHandler(rnd *render.Render, userRepo repositories.UserRepository, sessionStore sessions.Store) *AuthHandler {
	return &AuthHandler{
		render:       rnd,
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if h.sessionStore.GetAdminUserID(r) != 0 {
		http.Redirect(w, r, "/admin/", http.StatusSeeOther)
		return
	}

	data := baseData(r, map[string]interface{}{"Title": "Login"})
	_ = h.render.HTML(w, http.StatusOK, "admin/login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/admin/login", "error", "Could not read the submitted form.")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("AuthHandler.LoginPost: error getting user by email %q: %v", email, err)
		redirectWithMessage(w, r, "/admin/login", "error", "Server error, try again.")
		return
	}
	if user == nil || user.Role != models.RoleAdmin {
		redirectWithMessage(w, r, "/admin/login", "error", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		redirectWithMessage(w, r, "/admin/login", "error", "Invalid email or password.")
		return
	}

	if err := h.sessionStore.SetAdminUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.LoginPost: error saving session: %v", err)
		redirectWithMessage(w, r, "/admin/login", "error", "Could not start session.")
		return
	}

	http.Redirect(w, r, "/admin/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearAdminUserID(w, r); err != nil {
		log.Printf("AuthHandler.Logout: error clearing session: %v", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

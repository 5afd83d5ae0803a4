package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues bearer tokens for the SPA client.
type AuthHandler struct {
	render    *render.Render
	userRepo  repositories.UserRepository
	validator *validator.Validate
	jwtSecret []byte
}

func NewAuthHandler(rnd *render.Render, userRepo repositories.UserRepository, validate *validator.Validate, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{
		render:    rnd,
		userRepo:  userRepo,
		validator: validate,
		jwtSecret: jwtSecret,
	}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=30"`
	Password  string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(h.render, w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = h.render.JSON(w, http.StatusBadRequest, helpers.FormatValidationErrors(validationErrs))
			return
		}
		writeDetail(h.render, w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("AuthHandler.Register: %v", err)
		writeServerError(h.render, w)
		return
	}
	if existing != nil {
		writeDetail(h.render, w, http.StatusBadRequest, "A user with this email already exists.")
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  helpers.HashPassword(req.Password),
		Role:      models.RoleCustomer,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler.Register: %v", err)
		writeServerError(h.render, w)
		return
	}

	token, err := helpers.GenerateToken(h.jwtSecret, user)
	if err != nil {
		log.Printf("AuthHandler.Register: failed to issue token: %v", err)
		writeServerError(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, tokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(h.render, w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("AuthHandler.Login: %v", err)
		writeServerError(h.render, w)
		return
	}
	if user == nil {
		writeDetail(h.render, w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeDetail(h.render, w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	token, err := helpers.GenerateToken(h.jwtSecret, user)
	if err != nil {
		log.Printf("AuthHandler.Login: failed to issue token: %v", err)
		writeServerError(h.render, w)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, tokenResponse{Token: token})
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/services"
	"github.com/unrolled/render"
)

type ProfileHandler struct {
	render     *render.Render
	profileSvc *services.ProfileService
	validator  *validator.Validate
}

func NewProfileHandler(rnd *render.Render, profileSvc *services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{
		render:     rnd,
		profileSvc: profileSvc,
		validator:  validate,
	}
}

type profileResponse struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	BirthDay   *int   `json:"birth_day"`
	BirthMonth *int   `json:"birth_month"`
	BirthYear  *int   `json:"birth_year"`
	Gender     string `json:"gender"`
}

func serializeProfile(profile *models.Profile) profileResponse {
	return profileResponse{
		Name:       profile.Name,
		Surname:    profile.Surname,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Address:    profile.Address,
		BirthDay:   profile.BirthDay,
		BirthMonth: profile.BirthMonth,
		BirthYear:  profile.BirthYear,
		Gender:     profile.Gender,
	}
}

// Get lists the caller's profile: a one-element array when one resolves,
// an empty array otherwise (the SPA treats the endpoint as a collection).
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := helpers.GetUserIDFromContext(r.Context())

	profile, err := h.profileSvc.Resolve(r.Context(), w, r, userID)
	if err != nil {
		log.Printf("ProfileHandler.Get: %v", err)
		writeServerError(h.render, w)
		return
	}

	out := []profileResponse{}
	if profile != nil {
		out = append(out, serializeProfile(profile))
	}
	_ = h.render.JSON(w, http.StatusOK, out)
}

func (h *ProfileHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(h.render, w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	if err := h.validator.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = h.render.JSON(w, http.StatusBadRequest, helpers.FormatValidationErrors(validationErrs))
			return
		}
		writeDetail(h.render, w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	userID := helpers.GetUserIDFromContext(r.Context())
	profile, created, err := h.profileSvc.CreateOrUpdate(r.Context(), w, r, userID, input)
	if err != nil {
		log.Printf("ProfileHandler.Post: %v", err)
		writeServerError(h.render, w)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	_ = h.render.JSON(w, status, serializeProfile(profile))
}

// Delete always rejects, for any caller.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.profileSvc.Delete(); errors.Is(err, services.ErrProfileDeleteDisabled) {
		writeDetail(h.render, w, http.StatusBadRequest, "Deleting profile via API is disabled")
		return
	}
	writeServerError(h.render, w)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nodirbekm/koreancosmetics/app/models"
	"github.com/nodirbekm/koreancosmetics/app/repositories"
	"github.com/nodirbekm/koreancosmetics/app/utils/sessions"
	"gorm.io/gorm"
)

// ErrProfileDeleteDisabled is returned for every delete attempt, profiles
// are retained for order history.
var ErrProfileDeleteDisabled = errors.New("deleting profile via API is disabled")

// ProfileInput is the writable subset of a profile.
type ProfileInput struct {
	Name       string `json:"name" validate:"max=150"`
	Surname    string `json:"surname" validate:"max=150"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"max=30"`
	Address    string `json:"address" validate:"max=300"`
	BirthDay   *int   `json:"birth_day" validate:"omitempty,gte=1,lte=31"`
	BirthMonth *int   `json:"birth_month" validate:"omitempty,gte=1,lte=12"`
	BirthYear  *int   `json:"birth_year" validate:"omitempty,gte=1900,lte=2100"`
	Gender     string `json:"gender" validate:"omitempty,oneof=M F X"`
}

// ProfileService maps a request (authenticated user id or anonymous
// session) to the single profile the caller may act on. Session writes are
// part of the contract: creating an anonymous profile stores its id in the
// session, a dangling stored id is evicted on lookup.
type ProfileService struct {
	db       *gorm.DB
	profiles repositories.ProfileRepository
	sessions sessions.Store
}

func NewProfileService(db *gorm.DB, profiles repositories.ProfileRepository, sessionStore sessions.Store) *ProfileService {
	return &ProfileService{
		db:       db,
		profiles: profiles,
		sessions: sessionStore,
	}
}

// Resolve returns the caller's profile or nil when there is none yet.
func (s *ProfileService) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uint) (*models.Profile, error) {
	if userID != 0 {
		return s.profiles.FindByUserID(ctx, userID)
	}

	profileID := s.sessions.GetProfileID(r)
	if profileID == 0 {
		return nil, nil
	}

	profile, err := s.profiles.FindAnonymousByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// The stored id no longer resolves to an un-owned profile, treat
		// the caller as having none.
		if err := s.sessions.ClearProfileID(w, r); err != nil {
			return nil, fmt.Errorf("failed to evict stale profile id from session: %w", err)
		}
		return nil, nil
	}
	return profile, nil
}

// CreateOrUpdate applies the input to the caller's profile, creating one if
// absent. The returned bool reports whether a new profile was created.
func (s *ProfileService) CreateOrUpdate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uint, input ProfileInput) (*models.Profile, bool, error) {
	profile, err := s.Resolve(ctx, w, r, userID)
	if err != nil {
		return nil, false, err
	}

	created := profile == nil
	if created {
		profile = &models.Profile{Gender: models.GenderUnspecified}
		if userID != 0 {
			uid := userID
			profile.UserID = &uid
		}
	}
	applyProfileInput(profile, input)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(profile).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to save profile: %w", err)
	}

	if created && userID == 0 {
		if err := s.sessions.SetProfileID(w, r, profile.ID); err != nil {
			return nil, false, fmt.Errorf("failed to bind profile to session: %w", err)
		}
	}
	return profile, created, nil
}

// Delete always rejects, for any caller.
func (s *ProfileService) Delete() error {
	return ErrProfileDeleteDisabled
}

func applyProfileInput(profile *models.Profile, input ProfileInput) {
	profile.Name = input.Name
	profile.Surname = input.Surname
	profile.Email = input.Email
	profile.Phone = input.Phone
	profile.Address = input.Address
	profile.BirthDay = input.BirthDay
	profile.BirthMonth = input.BirthMonth
	profile.BirthYear = input.BirthYear
	if input.Gender != "" {
		profile.Gender = input.Gender
	}
}

package helpers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

// GetUserIDFromContext returns the authenticated user id, 0 for anonymous
// callers.
func GetUserIDFromContext(ctx context.Context) uint {
	userID, ok := ctx.Value(ContextKeyUserID).(uint)
	if !ok {
		return 0
	}
	return userID
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

// FormatValidationErrors maps validator errors to a field -> message map
// suitable for a 400 response body.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid email address."
		case "oneof":
			out[field] = fmt.Sprintf("Must be one of: %s.", fieldErr.Param())
		case "min":
			out[field] = fmt.Sprintf("Must be at least %s characters.", fieldErr.Param())
		case "max":
			out[field] = fmt.Sprintf("Must be at most %s characters.", fieldErr.Param())
		case "gte":
			out[field] = fmt.Sprintf("Must be greater than or equal to %s.", fieldErr.Param())
		case "lte":
			out[field] = fmt.Sprintf("Must be less than or equal to %s.", fieldErr.Param())
		default:
			out[field] = "Invalid value."
		}
	}
	return out
}

// AbsoluteMediaURL turns a stored media path into an absolute URL for the
// SPA. Empty paths and already-absolute URLs pass through.
func AbsoluteMediaURL(r *http.Request, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, path)
}

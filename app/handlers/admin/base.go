package admin

import (
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"github.com/nodirbekm/koreancosmetics/app/helpers"
	"github.com/nodirbekm/koreancosmetics/app/models"
)

// baseData assembles the data every console template expects: the logged-in
// admin plus the flash message carried in the query string.
func baseData(r *http.Request, pageData map[string]interface{}) map[string]interface{} {
	if pageData == nil {
		pageData = make(map[string]interface{})
	}

	if user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User); ok && user != nil {
		pageData["User"] = user
	}
	if _, exists := pageData["Title"]; !exists {
		pageData["Title"] = "Admin"
	}
	pageData["MessageStatus"] = r.URL.Query().Get("status")
	pageData["Message"] = r.URL.Query().Get("message")
	pageData["CSRFField"] = csrf.TemplateField(r)

	return pageData
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, status, message string) {
	http.Redirect(w, r, path+"?status="+status+"&message="+url.QueryEscape(message), http.StatusSeeOther)
}

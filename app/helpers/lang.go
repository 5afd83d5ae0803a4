package helpers

import (
	"net/http"
	"strings"
)

const DefaultLang = "ru"

var supportedLangs = map[string]bool{
	"ru": true,
	"uz": true,
	"en": true,
}

// ResolveLang picks the request language: ?lang= query first, then the lang
// cookie, then the Accept-Language header, defaulting to Russian.
func ResolveLang(r *http.Request) string {
	if lang := normalizeLang(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}
	if cookie, err := r.Cookie("lang"); err == nil {
		if lang := normalizeLang(cookie.Value); lang != "" {
			return lang
		}
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang := normalizeLang(tag); lang != "" {
			return lang
		}
	}
	return DefaultLang
}

func normalizeLang(tag string) string {
	tag = strings.ToLower(tag)
	if len(tag) > 2 {
		tag = tag[:2]
	}
	if supportedLangs[tag] {
		return tag
	}
	return ""
}

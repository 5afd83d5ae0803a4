package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "kcosmetics-session"

	profileIDSessionKey   = "profileID"
	adminUserIDSessionKey = "adminUserID"
)

// Store keeps the two pieces of cross-request state this app has: the id of
// the anonymous caller's profile and the id of the logged-in admin user.
type Store interface {
	GetProfileID(r *http.Request) uint
	SetProfileID(w http.ResponseWriter, r *http.Request, profileID uint) error
	ClearProfileID(w http.ResponseWriter, r *http.Request) error

	GetAdminUserID(r *http.Request) uint
	SetAdminUserID(w http.ResponseWriter, r *http.Request, userID uint) error
	ClearAdminUserID(w http.ResponseWriter, r *http.Request) error

	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(keyPairs ...[]byte) *CookieStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}
}

func (c *CookieStore) getSession(r *http.Request) *sessions.Session {
	// Get never returns a nil session, a broken cookie yields a fresh one.
	session, _ := c.store.Get(r, sessionCookieName)
	return session
}

func (c *CookieStore) getUint(r *http.Request, key string) uint {
	session := c.getSession(r)
	value, ok := session.Values[key].(uint)
	if !ok {
		return 0
	}
	return value
}

func (c *CookieStore) setUint(w http.ResponseWriter, r *http.Request, key string, value uint) error {
	session := c.getSession(r)
	session.Values[key] = value
	return session.Save(r, w)
}

func (c *CookieStore) clearKey(w http.ResponseWriter, r *http.Request, key string) error {
	session := c.getSession(r)
	delete(session.Values, key)
	return session.Save(r, w)
}

func (c *CookieStore) GetProfileID(r *http.Request) uint {
	return c.getUint(r, profileIDSessionKey)
}

func (c *CookieStore) SetProfileID(w http.ResponseWriter, r *http.Request, profileID uint) error {
	return c.setUint(w, r, profileIDSessionKey, profileID)
}

func (c *CookieStore) ClearProfileID(w http.ResponseWriter, r *http.Request) error {
	return c.clearKey(w, r, profileIDSessionKey)
}

func (c *CookieStore) GetAdminUserID(r *http.Request) uint {
	return c.getUint(r, adminUserIDSessionKey)
}

func (c *CookieStore) SetAdminUserID(w http.ResponseWriter, r *http.Request, userID uint) error {
	return c.setUint(w, r, adminUserIDSessionKey, userID)
}

func (c *CookieStore) ClearAdminUserID(w http.ResponseWriter, r *http.Request) error {
	return c.clearKey(w, r, adminUserIDSessionKey)
}

func (c *CookieStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

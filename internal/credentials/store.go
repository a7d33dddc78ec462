// Package credentials persists the Azure DevOps token and organization in
// cookies. There is no database: the cookie is the record. Two tiers exist,
// a client-readable cookie obfuscated with the XOR codec keyed on the
// browser's User-Agent, and an HttpOnly cookie obfuscated with the
// digest codec keyed on the server secret. Both tiers may independently be
// empty or stale; an absent credential is a normal state, not an error.
package credentials

import (
	"net/http"
	"time"

	"pr-dashboard-service/internal/codec"
)

const (
	// TokenCookie and OrganizationCookie are the only credential names the
	// store accepts.
	TokenCookie        = "azureDevOpsToken"
	OrganizationCookie = "organization"

	cookieLifetime = 30 * 24 * time.Hour
)

// KnownName reports whether name is one of the cookies this store manages.
func KnownName(name string) bool {
	return name == TokenCookie || name == OrganizationCookie
}

type Store struct {
	server codec.Codec
	secure bool
}

// NewStore builds a store whose server tier is keyed on serverSecret.
// secure controls the Secure attribute on server-tier cookies; it is off
// only in local development.
func NewStore(serverSecret string, secure bool) *Store {
	return &Store{
		server: codec.NewDigest(serverSecret),
		secure: secure,
	}
}

// clientCodec is derived per request: the XOR keystream comes from the
// caller's User-Agent, so a cookie written for one browser reads as absent
// from another.
func (s *Store) clientCodec(r *http.Request) codec.Codec {
	return codec.NewXOR(r.UserAgent())
}

// SetClient writes a client-tier cookie: readable by page scripts, 30-day
// expiry, SameSite=Strict, root path.
func (s *Store) SetClient(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    s.clientCodec(r).Encode(value),
		Path:     "/",
		Expires:  time.Now().Add(cookieLifetime),
		SameSite: http.SameSiteStrictMode,
	})
}

// GetClient reads and decodes a client-tier cookie. A missing or corrupted
// cookie reads as absent.
func (s *Store) GetClient(r *http.Request, name string) (string, bool) {
	cc := s.clientCodec(r)
	for _, c := range r.Cookies() {
		if c.Name != name {
			continue
		}
		if v := cc.Decode(c.Value); v != "" {
			return v, true
		}
	}
	return "", false
}

// RemoveClient deletes a client-tier cookie by expiring it immediately.
func (s *Store) RemoveClient(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// SetServer writes a server-tier cookie: HttpOnly, SameSite=Strict, Secure
// outside development, 30-day max age, root path.
func (s *Store) SetServer(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    s.server.Encode(value),
		Path:     "/",
		MaxAge:   int(cookieLifetime.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetServer reads and decodes a server-tier cookie.
func (s *Store) GetServer(r *http.Request, name string) (string, bool) {
	for _, c := range r.Cookies() {
		if c.Name != name {
			continue
		}
		if v := s.server.Decode(c.Value); v != "" {
			return v, true
		}
	}
	return "", false
}

// RemoveServer deletes a server-tier cookie.
func (s *Store) RemoveServer(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Get resolves a credential, preferring the client tier and falling back to
// the server tier. Both tiers share a cookie name, so resolution tries the
// client codec first on every matching cookie and the server codec second;
// whichever decodes cleanly wins.
func (s *Store) Get(r *http.Request, name string) (string, bool) {
	if v, ok := s.GetClient(r, name); ok {
		return v, true
	}
	return s.GetServer(r, name)
}

// Token resolves the stored access token, or "" when neither tier holds one.
func (s *Store) Token(r *http.Request) string {
	v, _ := s.Get(r, TokenCookie)
	return v
}

// Organization resolves the stored organization name, or "".
func (s *Store) Organization(r *http.Request) string {
	v, _ := s.Get(r, OrganizationCookie)
	return v
}

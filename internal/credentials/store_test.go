package credentials_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pr-dashboard-service/internal/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

func newRequest() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("User-Agent", userAgent)
	return r
}

// withCookies copies the recorder's Set-Cookie output onto a request,
// simulating the browser echoing the cookies back.
func withCookies(r *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestClientTierRoundTrip(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.SetClient(rec, newRequest(), credentials.TokenCookie, "my-token")

	r := withCookies(newRequest(), rec)
	value, ok := store.GetClient(r, credentials.TokenCookie)
	require.True(t, ok)
	assert.Equal(t, "my-token", value)
}

func TestClientTierCookieAttributes(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.SetClient(rec, newRequest(), credentials.TokenCookie, "my-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.False(t, c.HttpOnly)
	assert.False(t, c.Expires.IsZero())
	assert.NotEqual(t, "my-token", c.Value)
}

func TestServerTierCookieAttributes(t *testing.T) {
	store := credentials.NewStore("server-secret", true)

	rec := httptest.NewRecorder()
	store.SetServer(rec, credentials.TokenCookie, "my-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, 30*24*60*60, c.MaxAge)
	assert.NotEqual(t, "my-token", c.Value)
}

func TestServerTierSecureFlagOffInDevelopment(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.SetServer(rec, credentials.TokenCookie, "my-token")

	require.Len(t, rec.Result().Cookies(), 1)
	assert.False(t, rec.Result().Cookies()[0].Secure)
}

func TestResolutionPrefersClientTier(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	clientRec := httptest.NewRecorder()
	store.SetClient(clientRec, newRequest(), credentials.TokenCookie, "client-token")
	serverRec := httptest.NewRecorder()
	store.SetServer(serverRec, credentials.TokenCookie, "server-token")

	r := withCookies(withCookies(newRequest(), clientRec), serverRec)

	assert.Equal(t, "client-token", store.Token(r))
}

func TestResolutionFallsBackToServerTier(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.SetServer(rec, credentials.TokenCookie, "server-token")

	r := withCookies(newRequest(), rec)

	assert.Equal(t, "server-token", store.Token(r))
}

func TestResolutionAbsentIsNotAnError(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	r := newRequest()
	value, ok := store.Get(r, credentials.TokenCookie)
	assert.False(t, ok)
	assert.Equal(t, "", value)
	assert.Equal(t, "", store.Token(r))
	assert.Equal(t, "", store.Organization(r))
}

func TestCorruptedCookieReadsAsAbsent(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	r := newRequest()
	r.AddCookie(&http.Cookie{Name: credentials.TokenCookie, Value: "garbage-that-is-not-base64"})

	_, ok := store.Get(r, credentials.TokenCookie)
	assert.False(t, ok)
}

func TestClientTierBoundToUserAgent(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.SetClient(rec, newRequest(), credentials.TokenCookie, "my-token")

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("User-Agent", "another browser entirely")
	other = withCookies(other, rec)

	// A different browser's keystream cannot recover the value.
	value, _ := store.GetClient(other, credentials.TokenCookie)
	assert.NotEqual(t, "my-token", value)
}

func TestRemoveExpiresCookies(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.RemoveClient(rec, credentials.TokenCookie)
	store.RemoveServer(rec, credentials.TokenCookie)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Equal(t, -1, c.MaxAge)
		assert.Empty(t, c.Value)
	}
}

func TestKnownName(t *testing.T) {
	assert.True(t, credentials.KnownName(credentials.TokenCookie))
	assert.True(t, credentials.KnownName(credentials.OrganizationCookie))
	assert.False(t, credentials.KnownName("sessionId"))
}

func TestOrganizationResolution(t *testing.T) {
	store := credentials.NewStore("server-secret", false)

	rec := httptest.NewRecorder()
	store.SetServer(rec, credentials.OrganizationCookie, "acme")

	r := withCookies(newRequest(), rec)
	assert.Equal(t, "acme", store.Organization(r))
}

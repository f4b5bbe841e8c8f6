package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func signToken(t *testing.T, secret []byte, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestVerifySessionToken(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		Roles: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	identity, err := VerifySessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UID)
	assert.Equal(t, []string{"admin"}, identity.Roles)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token := signToken(t, []byte("other-secret"), SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})

	_, err := VerifySessionToken(testSecret, token)
	assert.Error(t, err)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := VerifySessionToken(testSecret, token)
	assert.Error(t, err)
}

func TestVerifySessionToken_NoSubject(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{})

	_, err := VerifySessionToken(testSecret, token)
	assert.Error(t, err)
}

func TestRequireSession_InjectsIdentity(t *testing.T) {
	token := signToken(t, testSecret, SessionClaims{
		Roles: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	var seen Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := FromContext(r.Context())
		require.True(t, ok)
		seen = identity
	})

	r := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	RequireSession(testSecret)(next).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", seen.UID)
	assert.Equal(t, []string{"admin"}, seen.Roles)
}

func TestRequireSession_MissingCookie(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	})

	rec := httptest.NewRecorder()
	RequireSession(testSecret)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRequireSession_InvalidToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid session")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage.token.value"})
	rec := httptest.NewRecorder()

	RequireSession(testSecret)(next).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

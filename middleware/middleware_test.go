package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"feastly/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func authTestSetup(t *testing.T) (httprouter.Handle, *bool) {
	t.Helper()
	globals.APIToken = "test-api-token"
	globals.JwtSecret = []byte("test-secret")
	t.Cleanup(func() {
		globals.APIToken = ""
		globals.JwtSecret = nil
	})

	called := false
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return handler, &called
}

func TestAuthenticateStaticToken(t *testing.T) {
	handler, called := authTestSetup(t)

	r := httptest.NewRequest(http.MethodGet, "/api/recipes?limit=5", nil)
	r.Header.Set("Authorization", "Bearer test-api-token")
	w := httptest.NewRecorder()

	handler(w, r, nil)
	if !*called || w.Code != http.StatusOK {
		t.Fatalf("static token rejected: code=%d called=%v", w.Code, *called)
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	handler, called := authTestSetup(t)

	r := httptest.NewRequest(http.MethodGet, "/api/recipes?limit=5", nil)
	r.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()

	handler(w, r, nil)
	if *called || w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token accepted: code=%d called=%v", w.Code, *called)
	}
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	handler, called := authTestSetup(t)

	r := httptest.NewRequest(http.MethodGet, "/api/recipes?limit=5", nil)
	w := httptest.NewRecorder()

	handler(w, r, nil)
	if *called || w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header accepted: code=%d called=%v", w.Code, *called)
	}
}

func TestAuthenticateAcceptsSignedJWT(t *testing.T) {
	handler, called := authTestSetup(t)

	claims := Claims{
		Client: "feastly-client",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/recipes?limit=5", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	handler(w, r, nil)
	if !*called || w.Code != http.StatusOK {
		t.Fatalf("valid JWT rejected: code=%d called=%v", w.Code, *called)
	}
}

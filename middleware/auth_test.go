package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snapwall/snapwall/utils"
)

func newGuardedRouter(codec *utils.TokenCodec, called *bool, got *utils.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthRequired(codec), func(ctx *gin.Context) {
		*called = true
		if p, ok := PrincipalFrom(ctx); ok {
			*got = p
		}
		ctx.Status(http.StatusOK)
	})
	return r
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	codec := utils.NewTokenCodec("test-secret", time.Hour)
	var called bool
	var principal utils.Principal
	r := newGuardedRouter(codec, &called, &principal)

	req := httptest.NewRequest("GET", "/guarded", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("wrapped handler must not run without a credential")
	}
}

func TestAuthRequiredBadScheme(t *testing.T) {
	codec := utils.NewTokenCodec("test-secret", time.Hour)
	var called bool
	var principal utils.Principal
	r := newGuardedRouter(codec, &called, &principal)

	token, err := codec.Mint(1, "a@example.com")
	if err != nil {
		t.Fatalf("Mint() error: %v", err)
	}

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("wrapped handler must not run with a non-bearer scheme")
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	codec := utils.NewTokenCodec("test-secret", time.Hour)

	for _, token := range []string{"garbage", "a.b.c", ""} {
		var called bool
		var principal utils.Principal
		r := newGuardedRouter(codec, &called, &principal)

		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d, want %d", token, rec.Code, http.StatusUnauthorized)
		}
		if called {
			t.Errorf("token %q: wrapped handler must not run", token)
		}
	}
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	expiredCodec := utils.NewTokenCodec("test-secret", -time.Hour)
	codec := utils.NewTokenCodec("test-secret", time.Hour)
	var called bool
	var principal utils.Principal
	r := newGuardedRouter(codec, &called, &principal)

	token, err := expiredCodec.Mint(1, "a@example.com")
	if err != nil {
		t.Fatalf("Mint() error: %v", err)
	}

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("wrapped handler must not run with an expired credential")
	}
}

func TestAuthRequiredInjectsPrincipal(t *testing.T) {
	codec := utils.NewTokenCodec("test-secret", time.Hour)
	var called bool
	var principal utils.Principal
	r := newGuardedRouter(codec, &called, &principal)

	token, err := codec.Mint(42, "alice@example.com")
	if err != nil {
		t.Fatalf("Mint() error: %v", err)
	}

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !called {
		t.Fatal("wrapped handler did not run for a valid credential")
	}
	if principal.SubjectID != 42 || principal.Email != "alice@example.com" {
		t.Errorf("principal = %+v, want subject 42 / alice@example.com", principal)
	}
}

package auth

import (
	"strings"
	"testing"
	"time"

	dom "github.com/shawki99/Auth-Sys-BE/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)
	u := dom.User{ID: 42, Email: "ann@example.com", Name: "Ann"}

	tok, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "42")
	}
	if claims.Email != u.Email {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, u.Email)
	}
	if claims.Name != u.Name {
		t.Fatalf("name mismatch: got %q want %q", claims.Name, u.Name)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatal("expected expiry in the future")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := Claims{
		Email: "a@b.com",
		Name:  "A",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = NewIssuer(secret, time.Hour).Parse(tok)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret", time.Hour).Issue(dom.User{ID: 2})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewIssuer("wrong-secret", time.Hour).Parse(tok)
	if err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestParse_UnsignedToken(t *testing.T) {
	t.Parallel()

	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "3"}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = NewIssuer("k", time.Hour).Parse(tok)
	if err == nil {
		t.Fatal("expected error for alg=none token, got nil")
	}
	if !strings.Contains(err.Error(), "signing method") {
		t.Fatalf("expected signing method error, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k", time.Hour).Parse("not.a.jwt")
	if err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

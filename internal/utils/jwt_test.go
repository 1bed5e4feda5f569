package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "ADMIN", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token")
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v (valid=%v)", err, tok != nil && tok.Valid)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if claims["role"] != "ADMIN" {
		t.Errorf("role = %v, want ADMIN", claims["role"])
	}
	if d := time.Until(at.Exp); d < 14*time.Minute || d > 16*time.Minute {
		t.Errorf("expiry %s not around 15 minutes out", at.Exp)
	}
}

func TestNewRefreshToken(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 { // 48 random bytes hex-encoded
		t.Errorf("raw length = %d, want 96", len(rt.Raw))
	}
	if d := time.Until(rt.Exp); d < 6*24*time.Hour || d > 8*24*time.Hour {
		t.Errorf("expiry %s not around 7 days out", rt.Exp)
	}

	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if rt.Raw == other.Raw {
		t.Error("two refresh tokens came out identical")
	}
}

func TestHashRefreshRaw(t *testing.T) {
	a := HashRefreshRaw("token-a")
	if a != HashRefreshRaw("token-a") {
		t.Error("hash is not deterministic")
	}
	if a == HashRefreshRaw("token-b") {
		t.Error("different tokens hashed identically")
	}
	if len(a) != 64 { // sha256 hex
		t.Errorf("hash length = %d, want 64", len(a))
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

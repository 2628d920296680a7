package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-42", "agent")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "user-42" {
		t.Errorf("subject = %q, want user-42", claims.Subject)
	}
	if claims.Role != "agent" {
		t.Errorf("role = %q, want agent", claims.Role)
	}
}

func TestJWTExpiredRejected(t *testing.T) {
	token, err := GenerateJWTWithTTL("user-42", "user", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestJWTTamperedRejected(t *testing.T) {
	token, err := GenerateJWT("user-42", "user")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Fatal("tampered token validated")
	}
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Fatal("garbage token validated")
	}
}

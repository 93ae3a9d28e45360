package lib

import (
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	userID, ok := claims["userId"].(float64)
	if !ok || uint(userID) != 42 {
		t.Fatalf("expected userId 42, got %v", claims["userId"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatal("expected an expiry claim")
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}

	// token signed with a different key
	foreign := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJ1c2VySWQiOjF9." +
		"invalidsignature"
	if _, err := VerifyJWT(foreign); err == nil {
		t.Fatal("expected an error for a bad signature")
	}
}

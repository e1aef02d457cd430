package token

import (
	"testing"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"

	signed, err := GenerateJWT(42, "administrator", secret, 15)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(signed, secret)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("userId = %d, want 42", claims.UserID)
	}
	if claims.Role != "administrator" {
		t.Errorf("role = %q, want administrator", claims.Role)
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(7, "federation", "right-secret", 15)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(signed, "wrong-secret"); err == nil {
		t.Fatal("expected validation failure with the wrong secret")
	}
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	signed, err := GenerateJWT(7, "federation", "secret", -1)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(signed, "secret"); err == nil {
		t.Fatal("expected validation failure for an expired token")
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token", "secret"); err == nil {
		t.Fatal("expected validation failure for malformed input")
	}
}

package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret", 60)

	token, err := GenerateJWTToken("user-1", "alice@example.com", false)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ValidateJWTToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if claims.IsAdmin {
		t.Errorf("token should not carry admin flag")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret", 60)
	if _, err := ValidateJWTToken("not-a-token"); err == nil {
		t.Errorf("garbage token validated")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPasswordHash("hunter22", hash) {
		t.Errorf("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Errorf("wrong password accepted")
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	if got := ExtractNameFromEmail("alice@example.com"); got != "alice" {
		t.Errorf("expected alice, got %s", got)
	}
	if got := ExtractNameFromEmail("no-at-sign"); got != "no-at-sign" {
		t.Errorf("expected input back, got %s", got)
	}
}

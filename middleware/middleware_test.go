package middleware

import (
	"testing"

	"kidfit/domain"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42, "aigerim@example.kz", "Aigerim", domain.RoleParent)
	if err != nil {
		t.Fatalf("GenerateJWT() returned error: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT() returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "aigerim@example.kz" {
		t.Errorf("Email = %q, want %q", claims.Email, "aigerim@example.kz")
	}
	if claims.Role != domain.RoleParent {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleParent)
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := VerifyJWT(token); err == nil {
			t.Errorf("VerifyJWT(%q) accepted an invalid token", token)
		}
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(1, "x@example.kz", "X", domain.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateJWT() returned error: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := VerifyJWT(token); err == nil {
		t.Error("VerifyJWT() accepted a token signed with a different secret")
	}
}

package jwt

import (
	"testing"
	"time"

	"doctor-booking-api/config"

	"github.com/google/uuid"
)

func newTestService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:      secret,
		TokenExpiry: expiry,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, "doctor")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" || tokenID == "" {
		t.Fatal("GenerateToken() returned empty token or token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "doctor" {
		t.Errorf("Role = %q, want %q", claims.Role, "doctor")
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService("test-secret", -time.Hour)

	token, _, err := svc.GenerateToken(uuid.New(), "customer")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestService("secret-one", time.Hour)
	verifier := newTestService("secret-two", time.Hour)

	token, _, err := issuer.GenerateToken(uuid.New(), "customer")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) accepted a malformed token", token)
		}
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	_, first, err := svc.GenerateToken(userID, "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	_, second, err := svc.GenerateToken(userID, "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if first == second {
		t.Error("two tokens for the same user share a token ID")
	}
}

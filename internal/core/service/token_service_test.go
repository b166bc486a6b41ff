package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue("user_1", domain.RoleManager)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_MissingSecret(t *testing.T) {
	if _, err := NewTokenService("", time.Hour); !errors.Is(err, domain.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_1",
		"role": domain.RoleAdmin,
		"exp":  time.Now().Add(-2 * time.Second).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// Expired and forged tokens must fail with the same error value so the API
// cannot be used as an expiry-vs-tampering oracle.
func TestTokenService_NoOracle(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	other, err := NewTokenService("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	forged, err := other.Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_1",
		"role": domain.RoleAdmin,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signedExpired, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, errForged := svc.Verify(forged)
	_, errExpired := svc.Verify(signedExpired)
	_, errGarbage := svc.Verify("not-a-token")

	for _, err := range []error{errForged, errExpired, errGarbage} {
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	}
}

func TestTokenService_UnknownRoleRejected(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user_1",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

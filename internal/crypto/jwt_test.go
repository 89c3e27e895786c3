package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	token, err := ti.Issue(42)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	claims, err := ti.Parse(token)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Parse() UserID = %d, want 42", claims.UserID)
	}
}

func TestTokenIssuerRejects(t *testing.T) {
	signed := func(issuer, audience, secret string, method jwt.SigningMethod) string {
		t.Helper()
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Audience:  jwt.ClaimStrings{audience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
			UserID: 42,
		}
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("SignedString() unexpected error: %v", err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-valid-token"},
		{name: "wrong secret", token: signed(tokenIssuer, tokenAudience, "other-secret", jwt.SigningMethodHS256)},
		{name: "wrong issuer", token: signed("wrong-issuer", tokenAudience, "test-secret", jwt.SigningMethodHS256)},
		{name: "wrong audience", token: signed(tokenIssuer, "wrong-audience", "test-secret", jwt.SigningMethodHS256)},
		{name: "wrong algorithm", token: signed(tokenIssuer, tokenAudience, "test-secret", jwt.SigningMethodHS512)},
	}

	ti := NewTokenIssuer("test-secret", time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ti.Parse(tt.token); err != ErrInvalidToken {
				t.Errorf("Parse() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

func TestTokenIssuerExpired(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Millisecond)

	token, err := ti.Issue(42)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ti.Parse(token); err == nil {
		t.Error("Parse() expected error for expired token")
	}
}

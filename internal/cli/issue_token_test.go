package cli

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/steadfast-app/steadfast/internal/models"
)

func TestSignIdentityTokenRoundTrip(t *testing.T) {
	t.Parallel()

	user := models.User{
		ExternalID: "ext-42",
		Email:      "coach@example.com",
		FirstName:  "Kim",
		IsCoach:    true,
	}
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	signed, err := signIdentityToken(user, "token-secret", now)
	if err != nil {
		t.Fatalf("signIdentityToken: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("token-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: valid=%v err=%v", parsed != nil && parsed.Valid, err)
	}

	if claims["sub"] != "ext-42" {
		t.Fatalf("sub = %v", claims["sub"])
	}
	if claims["email"] != "coach@example.com" {
		t.Fatalf("email = %v", claims["email"])
	}
	if claims["is_coach"] != true {
		t.Fatalf("is_coach = %v", claims["is_coach"])
	}

	expiry, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim type %T", claims["exp"])
	}
	if got := time.Unix(int64(expiry), 0).Sub(now); got != issuedTokenTTL {
		t.Fatalf("token lifetime = %s, want %s", got, issuedTokenTTL)
	}
}

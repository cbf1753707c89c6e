package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/steadfast-app/steadfast/internal/db"
	"github.com/steadfast-app/steadfast/internal/models"
)

const issuedTokenTTL = 30 * 24 * time.Hour

// RunIssueTokenCommand mints a signed identity token for an existing user.
// Development helper for exercising the API without the identity provider.
func RunIssueTokenCommand(dbPath string, email string, secret string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	if strings.TrimSpace(secret) == "" {
		return errors.New("SECRET_KEY is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	token, err := signIdentityToken(user, secret, time.Now())
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	fmt.Printf("Identity token for %s (expires in %s):\n\n%s\n", normalizedEmail, issuedTokenTTL, token)
	return nil
}

func signIdentityToken(user models.User, secret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":        user.ExternalID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"is_coach":   user.IsCoach,
		"iat":        now.Unix(),
		"exp":        now.Add(issuedTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

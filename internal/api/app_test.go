package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/steadfast-app/steadfast/internal/db"
	"github.com/steadfast-app/steadfast/internal/models"
)

const (
	testSecret        = "test-secret"
	testCronSecret    = "test-cron-secret"
	testWebhookSecret = "test-webhook-secret"
)

// newTestApp boots the full router against a fresh SQLite file. EmailFrom is
// left empty so the reminder sender runs in disabled mode.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "steadfast-api.db"))
	require.NoError(t, err)

	handler := NewHandler(database, HandlerConfig{
		Secret:        testSecret,
		CronSecret:    testCronSecret,
		WebhookSecret: testWebhookSecret,
		PhotoBucket:   "steadfast-test-photos",
		EmailFrom:     "",
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func signTestToken(t *testing.T, secret string, externalID string, email string, isCoach bool) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      externalID,
		"email":    email,
		"is_coach": isCoach,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	return response
}

func decodeJSON(t *testing.T, response *http.Response, out interface{}) {
	t.Helper()

	defer response.Body.Close()
	require.NoError(t, json.NewDecoder(response.Body).Decode(out))
}

func uintString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func webhookSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// userByExternalID reads the persisted row directly, the way the identity
// middleware left it.
func userByExternalID(t *testing.T, database *gorm.DB, externalID string) models.User {
	t.Helper()

	user := models.User{}
	require.NoError(t, database.Where("external_id = ?", externalID).First(&user).Error)
	return user
}

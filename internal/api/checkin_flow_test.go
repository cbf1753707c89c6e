package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steadfast-app/steadfast/internal/services"
)

type submitResponse struct {
	ID          uint `json:"id"`
	Overwritten bool `json:"overwritten"`
	Revived     bool `json:"revived"`
}

type conflictResponse struct {
	Conflict struct {
		ExistingID          uint      `json:"existingId"`
		ExistingSubmittedAt time.Time `json:"existingSubmittedAt"`
	} `json:"conflict"`
}

func TestCheckInSubmissionLifecycle(t *testing.T) {
	app, database := newTestApp(t)

	coachToken := signTestToken(t, testSecret, "ext-coach", "coach@example.com", true)
	clientToken := signTestToken(t, testSecret, "ext-client", "client@example.com", false)

	// First authenticated request creates the coach just in time.
	response := doJSON(t, app, http.MethodGet, "/api/coach/inbox", coachToken, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	coach := userByExternalID(t, database, "ext-coach")
	require.NotNil(t, coach.CoachCode)

	response = doJSON(t, app, http.MethodPost, "/api/connect", clientToken, fiber.Map{
		"coachCode": *coach.CoachCode,
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)

	weekOf := services.NormalizeToMonday(time.Now().UTC()).Format("2006-01-02")

	// First submission of the day.
	response = doJSON(t, app, http.MethodPost, "/api/checkins", clientToken, fiber.Map{
		"weekOf": weekOf,
		"weight": 181.5,
		"notes":  "solid week",
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	first := submitResponse{}
	decodeJSON(t, response, &first)
	assert.NotZero(t, first.ID)
	assert.False(t, first.Overwritten)

	// Same-day resubmission without a resolution is a decision point, not a write.
	response = doJSON(t, app, http.MethodPost, "/api/checkins", clientToken, fiber.Map{
		"weekOf": weekOf,
		"weight": 180.0,
	})
	require.Equal(t, http.StatusConflict, response.StatusCode)
	conflict := conflictResponse{}
	decodeJSON(t, response, &conflict)
	assert.Equal(t, first.ID, conflict.Conflict.ExistingID)

	// Overwrite keeps the identity of the existing row.
	response = doJSON(t, app, http.MethodPost, "/api/checkins", clientToken, fiber.Map{
		"weekOf":         weekOf,
		"weight":         179.0,
		"overwriteToday": true,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	overwritten := submitResponse{}
	decodeJSON(t, response, &overwritten)
	assert.Equal(t, first.ID, overwritten.ID)
	assert.True(t, overwritten.Overwritten)

	// Declining the overwrite adds a second entry for the same local day.
	response = doJSON(t, app, http.MethodPost, "/api/checkins", clientToken, fiber.Map{
		"weekOf":         weekOf,
		"weight":         178.5,
		"overwriteToday": false,
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	added := submitResponse{}
	decodeJSON(t, response, &added)
	assert.NotEqual(t, first.ID, added.ID)

	response = doJSON(t, app, http.MethodGet, "/api/checkins", clientToken, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	listed := make([]map[string]interface{}, 0)
	decodeJSON(t, response, &listed)
	assert.Len(t, listed, 2)

	// The coach reviews the latest entry and sees the client as reviewed.
	response = doJSON(t, app, http.MethodPost, "/api/checkins/"+uintString(added.ID)+"/review", coachToken, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	response = doJSON(t, app, http.MethodGet, "/api/coach/inbox", coachToken, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	inbox := make([]inboxEntryView, 0)
	decodeJSON(t, response, &inbox)
	require.Len(t, inbox, 1)

	client := userByExternalID(t, database, "ext-client")
	entry := inbox[0]
	assert.Equal(t, client.ID, entry.ClientID)
	assert.Equal(t, "reviewed", entry.Status)
	require.NotNil(t, entry.Weight)
	assert.InDelta(t, 178.5, *entry.Weight, 0.001)
	assert.LessOrEqual(t, entry.PeriodStart, time.Now().UTC().Format("2006-01-02"))
}

func TestMessagesThreadBetweenClientAndCoach(t *testing.T) {
	app, database := newTestApp(t)

	coachToken := signTestToken(t, testSecret, "ext-coach", "coach@example.com", true)
	clientToken := signTestToken(t, testSecret, "ext-client", "client@example.com", false)

	response := doJSON(t, app, http.MethodGet, "/api/coach/inbox", coachToken, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	coach := userByExternalID(t, database, "ext-coach")

	response = doJSON(t, app, http.MethodPost, "/api/connect", clientToken, fiber.Map{
		"coachCode": *coach.CoachCode,
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)

	weekOf := services.NormalizeToMonday(time.Now().UTC()).Format("2006-01-02")

	response = doJSON(t, app, http.MethodPost, "/api/messages", clientToken, fiber.Map{
		"weekOf": weekOf,
		"body":   "  How strict should the deficit be this week? ",
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	sent := messageView{}
	decodeJSON(t, response, &sent)
	assert.Equal(t, "How strict should the deficit be this week?", sent.Body)
	assert.Equal(t, weekOf, sent.WeekOf)

	client := userByExternalID(t, database, "ext-client")
	response = doJSON(t, app, http.MethodGet, "/api/messages?clientId="+uintString(client.ID)+"&weekOf="+weekOf, coachToken, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	thread := make([]messageView, 0)
	decodeJSON(t, response, &thread)
	require.Len(t, thread, 1)
	assert.Equal(t, client.ID, thread[0].SenderID)
}

func TestConnectRejectsUnknownCode(t *testing.T) {
	app, _ := newTestApp(t)

	clientToken := signTestToken(t, testSecret, "ext-client", "client@example.com", false)
	response := doJSON(t, app, http.MethodPost, "/api/connect", clientToken, fiber.Map{
		"coachCode": "ZZZZZZ",
	})
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

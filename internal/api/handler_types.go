package api

import (
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/steadfast-app/steadfast/internal/db"
	"github.com/steadfast-app/steadfast/internal/email"
	"github.com/steadfast-app/steadfast/internal/services"
	"github.com/steadfast-app/steadfast/internal/storage"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	cronSecret    string
	webhookSecret string

	repositories *db.Repositories
	clock        services.Clock
	photoStore   *storage.PhotoStore
	emailSender  *email.Sender

	identityService   *services.IdentityService
	checkInService    *services.CheckInService
	connectionService *services.ConnectionService
	scheduleService   *services.ScheduleService
	settingsService   *services.SettingsService
	inboxService      *services.InboxService
	messageService    *services.MessageService
	reminderService   *services.ReminderService
}

// identityTokenClaims is the verified token minted by the identity provider.
// Subject carries the external user id.
type identityTokenClaims struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsCoach   bool   `json:"is_coach"`
	jwt.RegisteredClaims
}

type HandlerConfig struct {
	Secret        string
	CronSecret    string
	WebhookSecret string
	PhotoBucket   string
	EmailFrom     string
}

func NewHandler(database *gorm.DB, config HandlerConfig) *Handler {
	handler := &Handler{
		db:            database,
		secretKey:     []byte(config.Secret),
		cronSecret:    config.CronSecret,
		webhookSecret: config.WebhookSecret,
		clock:         services.NewSystemClock(),
		photoStore:    storage.NewPhotoStore(config.PhotoBucket),
		emailSender:   email.NewSender(config.EmailFrom),
	}
	return handler.withDependencies(database)
}

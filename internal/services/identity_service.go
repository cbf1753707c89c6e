package services

import (
	"errors"
	"strings"

	"github.com/steadfast-app/steadfast/internal/models"
	"github.com/steadfast-app/steadfast/internal/security"
)

var ErrMissingIdentity = errors.New("missing identity subject")

// coachCodeAlphabet avoids ambiguous glyphs (0/O, 1/I).
const coachCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const coachCodeLength = 6

// IdentityClaims is the verified identity the provider attaches to a request
// or delivers through the sync webhook.
type IdentityClaims struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	IsCoach    bool
}

type IdentityUserStore interface {
	FindByExternalID(externalID string) (models.User, bool, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	SetCoachCode(userID uint, code string) error
}

// IdentityService maps verified external identities to local user rows,
// creating them just-in-time when the sync event has not arrived yet.
type IdentityService struct {
	users IdentityUserStore
}

func NewIdentityService(users IdentityUserStore) *IdentityService {
	return &IdentityService{users: users}
}

func (service *IdentityService) ResolveUser(claims IdentityClaims) (models.User, error) {
	externalID := strings.TrimSpace(claims.ExternalID)
	if externalID == "" {
		return models.User{}, ErrMissingIdentity
	}

	user, found, err := service.users.FindByExternalID(externalID)
	if err != nil {
		return models.User{}, err
	}
	if found {
		return user, nil
	}

	created, err := service.createFromClaims(claims)
	if err == nil {
		return created, nil
	}

	// A concurrent request may have won the JIT insert; the unique
	// external_id constraint makes the loser re-read instead of duplicating.
	user, found, lookupErr := service.users.FindByExternalID(externalID)
	if lookupErr == nil && found {
		return user, nil
	}
	return models.User{}, err
}

// SyncIdentity applies a provider webhook event, upserting the local record.
func (service *IdentityService) SyncIdentity(claims IdentityClaims) (models.User, error) {
	externalID := strings.TrimSpace(claims.ExternalID)
	if externalID == "" {
		return models.User{}, ErrMissingIdentity
	}

	user, found, err := service.users.FindByExternalID(externalID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return service.createFromClaims(claims)
	}

	user.Email = claims.Email
	user.FirstName = claims.FirstName
	user.LastName = claims.LastName
	user.IsCoach = claims.IsCoach
	if !user.IsCoach {
		user.IsClient = true
	}
	if user.ActiveRole == models.RoleCoach && !user.IsCoach {
		user.ActiveRole = models.RoleClient
	}
	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	if user.IsCoach && user.CoachCode == nil {
		if _, err := service.EnsureCoachCode(&user); err != nil {
			return models.User{}, err
		}
	}
	return user, nil
}

// EnsureCoachCode returns the user's coach code, minting one if absent.
func (service *IdentityService) EnsureCoachCode(user *models.User) (string, error) {
	if user.CoachCode != nil && *user.CoachCode != "" {
		return *user.CoachCode, nil
	}

	code, err := security.RandomString(coachCodeLength, coachCodeAlphabet)
	if err != nil {
		return "", err
	}
	if err := service.users.SetCoachCode(user.ID, code); err != nil {
		return "", err
	}
	user.CoachCode = &code
	return code, nil
}

func (service *IdentityService) createFromClaims(claims IdentityClaims) (models.User, error) {
	activeRole := models.RoleClient
	if claims.IsCoach {
		activeRole = models.RoleCoach
	}

	user := models.User{
		ExternalID: strings.TrimSpace(claims.ExternalID),
		Email:      claims.Email,
		FirstName:  claims.FirstName,
		LastName:   claims.LastName,
		IsCoach:    claims.IsCoach,
		IsClient:   !claims.IsCoach,
		ActiveRole: activeRole,
	}
	if claims.IsCoach {
		code, err := security.RandomString(coachCodeLength, coachCodeAlphabet)
		if err != nil {
			return models.User{}, err
		}
		user.CoachCode = &code
	}

	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

package api

import (
	"log"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
	"github.com/steadfast-app/steadfast/internal/services"
)

type checkInPhotoView struct {
	Path      string `json:"path"`
	SignedURL string `json:"signedUrl,omitempty"`
}

type checkInView struct {
	ID             uint               `json:"id"`
	ClientID       uint               `json:"clientId"`
	WeekOf         string             `json:"weekOf"`
	SubmittedAt    time.Time          `json:"submittedAt"`
	LocalDate      string             `json:"localDate"`
	Weight         *float64           `json:"weight"`
	DietCompliance *int               `json:"dietCompliance"`
	EnergyLevel    *int               `json:"energyLevel"`
	Notes          string             `json:"notes"`
	Status         string             `json:"status"`
	Photos         []checkInPhotoView `json:"photos"`
}

func (handler *Handler) buildCheckInView(entry models.CheckIn, withPhotos bool) (checkInView, error) {
	view := checkInView{
		ID:             entry.ID,
		ClientID:       entry.ClientID,
		WeekOf:         services.FormatDateUTC(entry.WeekOf),
		SubmittedAt:    entry.SubmittedAt.UTC(),
		LocalDate:      entry.LocalDate,
		Weight:         entry.Weight,
		DietCompliance: entry.DietCompliance,
		EnergyLevel:    entry.EnergyLevel,
		Notes:          entry.Notes,
		Status:         entry.Status,
		Photos:         []checkInPhotoView{},
	}
	if !withPhotos {
		return view, nil
	}

	photos, err := handler.repositories.CheckIns.ListPhotos(entry.ID)
	if err != nil {
		return checkInView{}, err
	}
	for _, photo := range photos {
		photoView := checkInPhotoView{Path: photo.StoragePath}
		signedURL, err := handler.photoStore.SignedDownloadURL(photo.StoragePath)
		if err != nil {
			// A broken signature hides the image, not the check-in.
			log.Printf("checkins: presign photo %q failed: %v", photo.StoragePath, err)
		} else {
			photoView.SignedURL = signedURL
		}
		view.Photos = append(view.Photos, photoView)
	}
	return view, nil
}

// canViewClientCheckIns authorizes reads: clients see their own history,
// coaches see assigned clients.
func (handler *Handler) canViewClientCheckIns(user *models.User, clientID uint) (bool, error) {
	if user.ID == clientID {
		return true, nil
	}
	if !user.IsCoach {
		return false, nil
	}
	_, assigned, err := handler.repositories.Links.FindPair(user.ID, clientID)
	if err != nil {
		return false, err
	}
	return assigned, nil
}

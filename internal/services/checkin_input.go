package services

import (
	"strings"
	"time"

	"github.com/steadfast-app/steadfast/internal/models"
)

const maxCheckInNotesLength = 5000

func validateCheckInInput(input CheckInInput) (time.Time, *ValidationError) {
	fieldErrors := &ValidationError{Fields: map[string][]string{}}

	weekOf, err := ParseWeekStartString(input.WeekOf)
	if err != nil {
		fieldErrors.Add("weekOf", "Invalid date")
	}

	if input.Weight <= 0 {
		fieldErrors.Add("weight", "Weight is required")
	}
	if input.DietCompliance != nil && (*input.DietCompliance < 1 || *input.DietCompliance > 10) {
		fieldErrors.Add("dietCompliance", "Must be between 1 and 10")
	}
	if input.EnergyLevel != nil && (*input.EnergyLevel < 1 || *input.EnergyLevel > 10) {
		fieldErrors.Add("energyLevel", "Must be between 1 and 10")
	}
	if len(input.Notes) > maxCheckInNotesLength {
		fieldErrors.Add("notes", "Notes are too long")
	}
	if len(input.PhotoPaths) > models.MaxCheckInPhotos {
		fieldErrors.Add("photoPaths", "At most 3 photos per check-in")
	}
	for _, path := range input.PhotoPaths {
		if strings.TrimSpace(path) == "" {
			fieldErrors.Add("photoPaths", "Photo path must not be empty")
			break
		}
	}

	if fieldErrors.HasErrors() {
		return time.Time{}, fieldErrors
	}
	return weekOf, nil
}

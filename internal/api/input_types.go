package api

type checkInPayload struct {
	WeekOf         string   `json:"weekOf"`
	Weight         float64  `json:"weight"`
	DietCompliance *int     `json:"dietCompliance"`
	EnergyLevel    *int     `json:"energyLevel"`
	Notes          string   `json:"notes"`
	PhotoPaths     []string `json:"photoPaths"`
	OverwriteToday *bool    `json:"overwriteToday"`
}

type connectPayload struct {
	CoachCode string `json:"coachCode"`
}

type leaveCoachPayload struct {
	LinkID uint `json:"linkId"`
}

type schedulePayload struct {
	CheckInDaysOfWeek []int `json:"checkInDaysOfWeek"`
}

type notesPayload struct {
	Notes string `json:"notes"`
}

type timezonePayload struct {
	Timezone string `json:"timezone"`
}

type notificationsPayload struct {
	EmailCheckInReminders bool `json:"emailCheckInReminders"`
	EmailMealPlanUpdates  bool `json:"emailMealPlanUpdates"`
}

type switchRolePayload struct {
	Role string `json:"role"`
}

type messagePayload struct {
	ClientID uint   `json:"clientId"`
	WeekOf   string `json:"weekOf"`
	Body     string `json:"body"`
}

type uploadURLsPayload struct {
	FileNames []string `json:"fileNames"`
}

type identityWebhookPayload struct {
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	IsCoach    bool   `json:"isCoach"`
}

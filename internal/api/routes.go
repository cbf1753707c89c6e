package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Post("/webhooks/identity", handler.IdentityWebhook)
	api.Post("/cron/checkin-reminders", handler.RunCheckInReminders)

	checkIns := api.Group("/checkins", handler.AuthRequired)
	checkIns.Post("", handler.SubmitCheckIn)
	checkIns.Get("", handler.ListCheckIns)
	checkIns.Get("/today-latest", handler.TodayLatestCheckIn)
	checkIns.Get("/:id", handler.GetCheckIn)
	checkIns.Delete("/:id", handler.DeleteCheckIn)
	checkIns.Post("/:id/review", handler.CoachOnly, handler.ReviewCheckIn)

	api.Get("/period", handler.AuthRequired, handler.GetPeriod)
	api.Post("/connect", handler.AuthRequired, handler.ConnectToCoach)
	api.Post("/leave-coach", handler.AuthRequired, handler.LeaveCoach)

	coach := api.Group("/coach", handler.AuthRequired, handler.CoachOnly)
	coach.Get("/inbox", handler.GetInbox)
	coach.Delete("/clients/:clientId", handler.RemoveClient)
	coach.Post("/clients/:clientId/schedule", handler.UpdateClientSchedule)
	coach.Post("/clients/:clientId/notes", handler.SaveClientNotes)
	coach.Get("/clients/:clientId/weight-history", handler.GetWeightHistory)

	messages := api.Group("/messages", handler.AuthRequired)
	messages.Get("", handler.ListMessages)
	messages.Post("", handler.SendMessage)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/schedule", handler.CoachOnly, handler.UpdateCoachSchedule)
	settings.Post("/timezone", handler.UpdateTimezone)
	settings.Post("/notifications", handler.UpdateNotifications)

	api.Post("/roles/switch", handler.AuthRequired, handler.SwitchRole)
	api.Post("/uploads/urls", handler.AuthRequired, handler.CreateUploadURLs)
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.Me)
	users.Put("/me", handler.UpdateMe)
	users.Get("/following", handler.ListFollowing)

	tracks := api.Group("/tracks", handler.AuthRequired)
	tracks.Get("", handler.ListTracks)
	tracks.Put("/:id", handler.UpsertTrack)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("", handler.ListStats)
	stats.Post("", handler.UpsertStat)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.UpsertGoal)
}

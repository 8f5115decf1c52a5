package api

import (
	"github.com/bilibuddies/bilibuddies/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (handler *Handler) UpsertTrack(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	trackID := c.Params("id")
	if _, err := uuid.Parse(trackID); err != nil {
		return apiError(c, fiber.StatusBadRequest, "track id must be a UUID")
	}

	input := upsertTrackInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	schedules := make([]services.ScheduleInput, 0, len(input.Schedules))
	for _, requested := range input.Schedules {
		effectiveFrom, err := services.ParseDay(requested.EffectiveFrom)
		if err != nil {
			return serviceError(c, err)
		}
		schedules = append(schedules, services.ScheduleInput{
			EffectiveFrom: effectiveFrom,
			Monday:        requested.Monday,
			Tuesday:       requested.Tuesday,
			Wednesday:     requested.Wednesday,
			Thursday:      requested.Thursday,
			Friday:        requested.Friday,
			Saturday:      requested.Saturday,
			Sunday:        requested.Sunday,
		})
	}

	view, err := handler.trackService.Upsert(user.ID, services.TrackUpsertInput{
		ID:         trackID,
		Name:       input.Name,
		Visibility: input.Visibility,
		Schedules:  schedules,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(trackResponse(view))
}

func (handler *Handler) ListTracks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID := c.Query("userId")
	if _, err := uuid.Parse(userID); err != nil {
		return apiError(c, fiber.StatusBadRequest, "userId must be a UUID")
	}

	views, err := handler.trackService.List(user.ID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	payload := make([]fiber.Map, 0, len(views))
	for _, view := range views {
		payload = append(payload, trackResponse(view))
	}
	return c.JSON(payload)
}

func trackResponse(view services.TrackWithSchedule) fiber.Map {
	response := fiber.Map{
		"id":         view.Track.ID,
		"userId":     view.Track.UserID,
		"name":       view.Track.Name,
		"visibility": view.Track.Visibility,
		"createdAt":  view.Track.CreatedAt,
	}
	if view.Current != nil {
		response["schedule"] = scheduleResponse(*view.Current)
	} else {
		response["schedule"] = nil
	}
	return response
}

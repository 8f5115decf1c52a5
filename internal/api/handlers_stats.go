package api

import (
	"github.com/bilibuddies/bilibuddies/internal/models"
	"github.com/bilibuddies/bilibuddies/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	query := listStatsQuery{
		FollowingIDs: splitIDList(c.Query("followingIds")),
		Cursor:       c.Query("cursor"),
		Limit:        c.QueryInt("limit"),
	}
	if err := validateInput(&query); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	cursor, err := services.ParseDay(query.Cursor)
	if err != nil {
		return serviceError(c, err)
	}

	page, err := handler.statsService.ListStats(user.ID, query.FollowingIDs, cursor, query.Limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(page)
}

func (handler *Handler) UpsertStat(c *fiber.Ctx) error {
	return handler.upsertStatOfType(c, models.StatTypeStat)
}

func (handler *Handler) UpsertGoal(c *fiber.Ctx) error {
	return handler.upsertStatOfType(c, models.StatTypeGoal)
}

func (handler *Handler) upsertStatOfType(c *fiber.Ctx, statType string) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := upsertStatInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	day, err := services.ParseDay(input.Date)
	if err != nil {
		return serviceError(c, err)
	}

	persisted, err := handler.statsService.UpsertStat(user.ID, input.TrackID, day, *input.Value, statType)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(statResponse(persisted))
}

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	trackID := c.Query("trackId")
	if trackID == "" {
		return apiError(c, fiber.StatusBadRequest, "trackId is required")
	}

	goals, err := handler.statsService.ListGoals(user.ID, trackID)
	if err != nil {
		return serviceError(c, err)
	}

	payload := make([]fiber.Map, 0, len(goals))
	for _, goal := range goals {
		payload = append(payload, statResponse(goal))
	}
	return c.JSON(payload)
}

// Dates cross the API boundary as plain YYYY-MM-DD strings, never as
// timestamps: the one canonical day representation is the UTC calendar day.
func statResponse(entry models.Stat) fiber.Map {
	return fiber.Map{
		"id":      entry.ID,
		"type":    entry.Type,
		"userId":  entry.UserID,
		"trackId": entry.TrackID,
		"date":    services.FormatDay(entry.Date),
		"value":   entry.Value,
	}
}

func scheduleResponse(version models.Schedule) fiber.Map {
	response := fiber.Map{
		"id":            version.ID,
		"trackId":       version.TrackID,
		"monday":        version.Monday,
		"tuesday":       version.Tuesday,
		"wednesday":     version.Wednesday,
		"thursday":      version.Thursday,
		"friday":        version.Friday,
		"saturday":      version.Saturday,
		"sunday":        version.Sunday,
		"effectiveFrom": services.FormatDay(version.EffectiveFrom),
	}
	if version.EffectiveTo != nil {
		response["effectiveTo"] = services.FormatDay(*version.EffectiveTo)
	} else {
		response["effectiveTo"] = nil
	}
	return response
}

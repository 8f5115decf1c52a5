package api

import (
	"github.com/bilibuddies/bilibuddies/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, tracks, err := handler.userService.Me(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":   profile,
		"tracks": tracks,
	})
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := updateMeInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := handler.userService.UpdateProfile(user.ID, services.ProfileUpdate{
		Name:      input.Name,
		Username:  input.Username,
		UseMetric: input.UseMetric,
		CheckMark: input.CheckMark,
		Image:     input.Image,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

func (handler *Handler) ListFollowing(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	following, err := handler.userService.ListFollowing(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(following)
}

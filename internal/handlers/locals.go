package handlers

import (
	"strconv"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/models"
	"github.com/gofiber/fiber/v2"
)

func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}

func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}

// canManage allows admins to act on any account and users only on their own.
func canManage(c *fiber.Ctx, targetID int64) bool {
	role, _ := c.Locals("role").(string)
	if role == models.RoleAdmin {
		return true
	}
	actorID, err := parseUserID(c)
	return err == nil && actorID == targetID
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"nome":     user.Name,
		"email":    user.Email,
		"admin":    user.Admin,
		"foto_url": user.PhotoURL,
	}
}

package controllers

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/clipvibe/ClipVibe/internal/pkg/env"
)

// validate is the shared validator for the typed request structs; handlers
// validate input at the boundary before anything reaches the data model.
var validate = validator.New()

// parseIDParam reads a numeric path parameter such as :video_id.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// baseURL returns the externally visible base URL for building share links.
func baseURL(c *fiber.Ctx) string {
	if domain := env.GetEnv("PUBLIC_DOMAIN", ""); domain != "" {
		return domain
	}
	return c.BaseURL()
}

// jsonError writes the shared JSON error envelope.
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

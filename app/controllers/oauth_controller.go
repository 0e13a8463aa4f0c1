package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/markbates/goth"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
	"github.com/clipvibe/ClipVibe/app/repository"
)

// HandleOAuthStart redirects to the provider's consent screen.
func HandleOAuthStart(c *fiber.Ctx) error {
	return gothfiber.BeginAuthHandler(c)
}

// HandleOAuthCallback completes the provider flow and logs the user in.
// Accounts are matched by verified email; first-time visitors get a fresh
// identity with an unusable random password.
func HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("OAuth failed: %v", err))
	}
	if u.Email == "" {
		return c.Status(fiber.StatusBadRequest).SendString("OAuth provider returned no email")
	}

	users := repository.GetGlobalFactory().GetUserRepository()

	user, err := users.GetByEmail(u.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		firstName, lastName := splitOAuthName(u)

		// Placeholder password; never used for login
		placeholder := fmt.Sprintf("oauth_%d", time.Now().UnixNano())
		user, err = models.CreateUser(firstName, lastName, u.Email, placeholder)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("create user failed: %v", err))
		}
		if err := users.Create(user); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("create user failed: %v", err))
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("db error: %v", err))
	}

	if err := establishSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("session save failed")
	}

	return c.Redirect("/feed/for_you", fiber.StatusSeeOther)
}

// splitOAuthName maps the provider's name fields onto first/last name,
// falling back to splitting the display name.
func splitOAuthName(u goth.User) (string, string) {
	first := strings.TrimSpace(u.FirstName)
	last := strings.TrimSpace(u.LastName)
	if first != "" && last != "" {
		return first, last
	}

	parts := strings.Fields(u.Name)
	switch {
	case len(parts) >= 2:
		return parts[0], strings.Join(parts[1:], " ")
	case len(parts) == 1:
		return parts[0], parts[0]
	case u.NickName != "":
		return u.NickName, u.NickName
	default:
		return "New", "User"
	}
}

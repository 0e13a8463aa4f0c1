package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/clipvibe/ClipVibe/app/models"
	"github.com/clipvibe/ClipVibe/app/repository"
	"github.com/clipvibe/ClipVibe/internal/pkg/session"
	"github.com/clipvibe/ClipVibe/internal/pkg/statistics"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

type registerRequest struct {
	FirstName string `form:"firstname" validate:"required,min=1,max=50"`
	LastName  string `form:"lastname" validate:"required,min=1,max=50"`
	Email     string `form:"email" validate:"required,email,max=120"`
	Password  string `form:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var req registerRequest
		fm := fiber.Map{"type": "error"}

		if err := c.BodyParser(&req); err != nil {
			fm["message"] = "Invalid form submission"
			return flash.WithError(c, fm).Redirect("/register")
		}
		if err := validate.Struct(&req); err != nil {
			fm["message"] = "Please fill in all fields (password needs at least 6 characters)"
			return flash.WithError(c, fm).Redirect("/register")
		}

		user, err := models.CreateUser(req.FirstName, req.LastName, req.Email, req.Password)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)
			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := repository.GetGlobalFactory().GetUserRepository().Create(user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				fm["message"] = "This email is already registered"
				return flash.WithError(c, fm).Redirect("/register")
			}
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)
			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := establishSession(c, user); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)
			return flash.WithError(c, fm).Redirect("/login")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Account created successfully! Please set your profile picture.",
		}
		return flash.WithSuccess(c, fm).Redirect(fmt.Sprintf("/profile/%d", user.ID))
	}

	return c.Render("register", fiber.Map{
		"Flash": flash.Get(c),
	})
}

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var req loginRequest
		fm := fiber.Map{"type": "error"}

		if err := c.BodyParser(&req); err != nil {
			fm["message"] = "Invalid form submission"
			return flash.WithError(c, fm).Redirect("/login")
		}
		if err := validate.Struct(&req); err != nil {
			fm["message"] = "Invalid email or password"
			return flash.WithError(c, fm).Redirect("/login")
		}

		user, err := repository.GetGlobalFactory().GetUserRepository().GetByEmail(req.Email)
		if err != nil || !user.CheckPassword(req.Password) {
			// Same message for unknown email and wrong password
			fm["message"] = "Invalid email or password"
			return flash.WithError(c, fm).Redirect("/login")
		}

		if err := establishSession(c, user); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)
			return flash.WithError(c, fm).Redirect("/login")
		}

		return c.Redirect("/feed/for_you")
	}

	return c.Render("login", fiber.Map{
		"Flash": flash.Get(c),
		"Stats": statistics.GetStatisticsData(),
	})
}

func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return c.Redirect("/login")
}

// establishSession stores the authenticated user in a fresh session.
func establishSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUserFirstName, user.FirstName)
	sess.Set(usercontext.KeyUserLastName, user.LastName)

	return sess.Save()
}

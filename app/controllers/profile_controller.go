package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/repository"
	"github.com/clipvibe/ClipVibe/internal/pkg/storage"
	"github.com/clipvibe/ClipVibe/internal/pkg/upload"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

// profile pictures are images only; clips are not accepted here
var profilePictureExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// HandleProfile renders a user's profile with their videos and the
// aggregated counters (followers, following, videos, likes across videos).
func HandleProfile(c *fiber.Ctx) error {
	viewer := usercontext.GetUserContext(c)

	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return fiber.ErrNotFound
	}

	repos := repository.GetGlobalRepositories()

	user, err := repos.User.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	videos, err := repos.Video.GetByUserID(userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	stats, err := repos.User.GetStatsByUserID(userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	isFollowing := false
	if viewer.IsLoggedIn && viewer.UserID != userID {
		isFollowing, _ = repos.Follow.IsFollowing(viewer.UserID, userID)
	}

	return c.Render("profile", fiber.Map{
		"Flash":       flash.Get(c),
		"Viewer":      viewer,
		"User":        user,
		"Videos":      videos,
		"Stats":       stats,
		"IsOwner":     viewer.UserID == userID,
		"IsFollowing": isFollowing,
	})
}

// HandleUpdateProfile replaces the profile picture: store the new file,
// commit the record, then best-effort delete the superseded file. A missing
// old file is fine.
func HandleUpdateProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	profileURL := fmt.Sprintf("/profile/%d", userCtx.UserID)
	fm := fiber.Map{"type": "error"}

	file, err := c.FormFile("profile_picture")
	if err != nil {
		fm["message"] = "No file selected."
		return flash.WithError(c, fm).Redirect(profileURL)
	}

	if !profilePictureExt[strings.ToLower(filepath.Ext(file.Filename))] {
		fm["message"] = "Invalid file format. Please upload a JPG, JPEG, or PNG image."
		return flash.WithError(c, fm).Redirect(profileURL)
	}

	storedName, err := upload.GenerateStoredName(file.Filename)
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)
		return flash.WithError(c, fm).Redirect(profileURL)
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(userCtx.UserID)
	if err != nil {
		fm["message"] = "User not found"
		return flash.WithError(c, fm).Redirect("/")
	}

	store := storage.NewLocalStorage()
	if err := store.Save(file, storedName); err != nil {
		fiberlog.Errorf("[Profile] Failed to store picture %s: %v", storedName, err)
		fm["message"] = "Failed to store the uploaded file"
		return flash.WithError(c, fm).Redirect(profileURL)
	}

	previous := user.ProfilePicture
	if err := repos.User.UpdateProfilePicture(user.ID, storedName); err != nil {
		_ = store.Delete(storedName)
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)
		return flash.WithError(c, fm).Redirect(profileURL)
	}

	// The record now points at the new file; the old one is dead weight.
	if user.HasCustomProfilePicture() {
		_ = store.Delete(previous)
	}

	fm = fiber.Map{"type": "success", "message": "Profile picture updated successfully!"}
	return flash.WithSuccess(c, fm).Redirect(profileURL)
}

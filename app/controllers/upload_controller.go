package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/clipvibe/ClipVibe/app/models"
	"github.com/clipvibe/ClipVibe/app/repository"
	"github.com/clipvibe/ClipVibe/internal/pkg/storage"
	"github.com/clipvibe/ClipVibe/internal/pkg/upload"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

type uploadRequest struct {
	Caption string `form:"caption" validate:"max=255"`
}

// HandleUpload serves the upload form and accepts a multipart video upload.
// The file lands on disk under a generated name before the record is written;
// a failed record write cleans the file up again.
func HandleUpload(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if c.Method() != fiber.MethodPost {
		return c.Render("upload", fiber.Map{
			"Flash":  flash.Get(c),
			"Viewer": userCtx,
		})
	}

	fm := fiber.Map{"type": "error"}

	file, err := c.FormFile("video")
	if err != nil {
		fm["message"] = "No video file"
		return flash.WithError(c, fm).Redirect("/upload")
	}

	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		fm["message"] = "Invalid form submission"
		return flash.WithError(c, fm).Redirect("/upload")
	}
	if err := validate.Struct(&req); err != nil {
		fm["message"] = "Caption is too long"
		return flash.WithError(c, fm).Redirect("/upload")
	}

	storedName, err := upload.GenerateStoredName(file.Filename)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedMediaType) {
			fm["message"] = "Invalid file format"
			return flash.WithError(c, fm).Redirect("/upload")
		}
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)
		return flash.WithError(c, fm).Redirect("/upload")
	}

	store := storage.NewLocalStorage()
	if err := store.Save(file, storedName); err != nil {
		fiberlog.Errorf("[Upload] Failed to store %s: %v", storedName, err)
		fm["message"] = "Failed to store the uploaded file"
		return flash.WithError(c, fm).Redirect("/upload")
	}

	video := &models.Video{
		FileName: storedName,
		Caption:  req.Caption,
		UserID:   userCtx.UserID,
	}
	if err := repository.GetGlobalFactory().GetVideoRepository().Create(video); err != nil {
		_ = store.Delete(storedName)
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)
		return flash.WithError(c, fm).Redirect("/upload")
	}

	fm = fiber.Map{"type": "success", "message": "Video uploaded successfully!"}
	return flash.WithSuccess(c, fm).Redirect(fmt.Sprintf("/profile/%d", userCtx.UserID))
}

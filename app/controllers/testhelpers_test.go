package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
	"github.com/clipvibe/ClipVibe/app/repository"
	"github.com/clipvibe/ClipVibe/internal/pkg/database"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

// setupTestDB wires an in-memory SQLite database into the global factory so
// handlers resolve their repositories against it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	))

	database.SetDB(db)
	repository.InitializeFactory(db)

	return db
}

// authAs injects a logged-in user context, bypassing the session store.
func authAs(user *models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usercontext.SetUserContext(c, usercontext.UserContext{
			UserID:     user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			IsLoggedIn: true,
		})
		return c.Next()
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := models.CreateUser("Test", "User", email, "password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID uint) *models.Video {
	t.Helper()

	video := &models.Video{FileName: "clip.mp4", Caption: "hi", UserID: ownerID}
	require.NoError(t, db.Create(video).Error)

	return video
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func postMultipart(t *testing.T, app *fiber.App, path, field, filename string, fields map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("test bytes"))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &data))

	return data
}

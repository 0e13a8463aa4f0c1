package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clipvibe/ClipVibe/app/controllers"
	"github.com/clipvibe/ClipVibe/internal/pkg/middleware"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

// InstallRouter registers the JSON endpoints the feed page calls. They
// return 401 instead of redirecting when the session is missing.
func (a ApiRouter) InstallRouter(app *fiber.App) {
	app.Post("/like/:video_id", middleware.RequireAPIAuth, controllers.HandleLike)
	app.Post("/comment/:video_id", middleware.RequireAPIAuth, controllers.HandleComment)
	app.Post("/follow/:user_id", middleware.RequireAPIAuth, controllers.HandleFollow)
	app.Post("/view/:video_id", middleware.RequireAPIAuth, controllers.HandleView)
	app.Get("/share/:video_id", middleware.RequireAPIAuth, controllers.HandleShare)
}

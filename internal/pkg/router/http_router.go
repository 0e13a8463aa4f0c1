package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clipvibe/ClipVibe/app/controllers"
	"github.com/clipvibe/ClipVibe/internal/pkg/middleware"
	"github.com/clipvibe/ClipVibe/internal/pkg/oauth"
	"github.com/clipvibe/ClipVibe/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Resolve the session into an explicit user context on every request
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerProtectedRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleIndex)

	app.Get("/register", controllers.HandleAuthRegister)
	app.Post("/register", controllers.HandleAuthRegister)
	app.Get("/login", controllers.HandleAuthLogin)
	app.Post("/login", controllers.HandleAuthLogin)

	// OAuth login via Goth
	app.Get("/auth/:provider", controllers.HandleOAuthStart)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}

func (h HttpRouter) registerProtectedRoutes(app *fiber.App) {
	app.Get("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	app.Get("/feed/:mode?", middleware.RequireAuth, controllers.HandleFeed)
	app.Get("/profile/:user_id", middleware.RequireAuth, controllers.HandleProfile)

	app.Get("/upload", middleware.RequireAuth, controllers.HandleUpload)
	app.Post("/upload", middleware.RequireAuth, controllers.HandleUpload)
	app.Post("/update_profile", middleware.RequireAuth, controllers.HandleUpdateProfile)
}

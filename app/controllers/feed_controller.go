package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/clipvibe/ClipVibe/app/repository"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

// HandleFeed renders the video feed. Mode "following" scopes the catalog to
// the viewer's follow set; anything else falls back to the for-you feed.
func HandleFeed(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	mode := repository.FeedMode(c.Params("mode", string(repository.FeedModeForYou)))
	if mode != repository.FeedModeFollowing {
		mode = repository.FeedModeForYou
	}

	videos, err := repository.GetGlobalFactory().GetVideoRepository().Feed(userCtx.UserID, mode)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Failed to load the feed"}
		return flash.WithError(c, fm).Redirect("/login")
	}

	// Mark which videos the viewer already liked so the template can render
	// the toggle state.
	liked := make(map[uint]bool, len(videos))
	for _, v := range videos {
		for _, l := range v.Likes {
			if l.UserID == userCtx.UserID {
				liked[v.ID] = true
				break
			}
		}
	}

	return c.Render("feed", fiber.Map{
		"Flash":    flash.Get(c),
		"Viewer":   userCtx,
		"Tab":      string(mode),
		"Videos":   videos,
		"LikedByMe": liked,
	})
}

// HandleIndex sends anonymous visitors to the login page and everyone else
// to their feed.
func HandleIndex(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect("/feed/for_you")
	}
	return c.Redirect("/login")
}

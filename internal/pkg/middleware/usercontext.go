package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clipvibe/ClipVibe/internal/pkg/session"
	"github.com/clipvibe/ClipVibe/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into an explicit user context
// for every request. Handlers never touch the session store directly; the
// acting user is read from the context and threaded into repository calls.
func UserContextMiddleware(c *fiber.Ctx) error {
	// Goth keeps its own fiber session store on the OAuth routes; skip ours
	// there to avoid cross-store collisions.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		usercontext.SetUserContext(c, usercontext.UserContext{IsLoggedIn: false})
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		usercontext.SetUserContext(c, usercontext.UserContext{IsLoggedIn: false})
		return c.Next()
	}

	firstName, _ := sess.Get(usercontext.KeyUserFirstName).(string)
	lastName, _ := sess.Get(usercontext.KeyUserLastName).(string)

	usercontext.SetUserContext(c, usercontext.UserContext{
		UserID:     userID.(uint),
		FirstName:  firstName,
		LastName:   lastName,
		IsLoggedIn: true,
	})

	return c.Next()
}

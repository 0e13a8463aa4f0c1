package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUserFirstName = "user_firstname"
	KeyUserLastName  = "user_lastname"
	KeyFromProtected = "from_protected"
)

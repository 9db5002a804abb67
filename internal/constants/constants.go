package constants

const (
	// Session / context keys
	SessionCookieName  = "ticketing_session"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"

	// Role descriptions used for route gating
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"

	MinPasswordLength = 4
)

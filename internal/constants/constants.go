package constants

import "time"

// Session and gin context keys
const (
	SessionCookieName    = "cleaning_session"
	ContextKeyUserID     = "user_id"
	ContextKeyRole       = "role"
	ContextKeyPrincipal  = "principal"
	ContextKeyAssignment = "assignment"
)

// Account roles stored in the session
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Validation limits
const (
	MinPasswordLength     = 6
	TemporaryPasswordSize = 10
	MaxReportDays         = 366
	MaxAIGeneratedTasks   = 20
)

// Pagination defaults
const (
	DefaultPage     = 1
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// SessionMaxAge is how long a login session stays valid.
const SessionMaxAge = 7 * 24 * time.Hour

// Package model defines the data structures used throughout the application.
package model

import "time"

// Role classifies a user's standing in the community.
//
// Roles are informational in the current scope — TAs and admins get a badge
// in the UI, but no operation checks them for access control. We still model
// them as a typed string (not a bare string) so the valid set is
// discoverable and typos fail review.
type Role string

const (
	RoleUser  Role = "user"
	RoleTA    Role = "TA"
	RoleAdmin Role = "admin"
)

// User represents a registered community member.
//
// Identity comes from a campus email address — there is no external identity
// provider. The internal ID is an xid, consistent with Question, Answer, and
// Resource IDs.
//
// Karma is a cumulative reputation score; it only ever increases, through the
// reward events defined in karma.go. Contributions is a display-only counter
// carried on the profile record.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar"`
	Karma         int       `json:"karma"`
	Contributions int       `json:"contributions"`
	Role          Role      `json:"role"`
	JoinedAt      time.Time `json:"joinedAt"`
}

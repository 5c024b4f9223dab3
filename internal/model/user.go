package model

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a field or admin account. Field users are assigned the projects
// they may submit daily entries for. Authentication mechanics live outside
// this backend; only the record itself is persisted.
type User struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Projects  []string  `json:"projects,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CanAccess reports whether the user may touch the named project.
func (u *User) CanAccess(project string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Projects {
		if p == project {
			return true
		}
	}
	return false
}

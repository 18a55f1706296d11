package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models an admin-panel account as returned by the remote CMS.
// The gateway never sees passwords; authentication happens upstream.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// ValidRole reports whether r is a role the CMS understands.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

package auth

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleUser   = "USER"
)

// Capability names an action a role may be granted.
type Capability string

const (
	CapEditPost      Capability = "edit_post"
	CapManageOptions Capability = "manage_options"
)

var grants = map[string][]Capability{
	RoleAdmin:  {CapEditPost, CapManageOptions},
	RoleEditor: {CapEditPost},
}

// Can reports whether role has been granted capability.
func Can(role string, capability Capability) bool {
	for _, c := range grants[role] {
		if c == capability {
			return true
		}
	}
	return false
}

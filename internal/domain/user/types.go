package user

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

var roleLevel = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// AtLeast reports whether r sits at or above other in the role hierarchy.
func (r Role) AtLeast(other Role) bool {
	return roleLevel[r] >= roleLevel[other]
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

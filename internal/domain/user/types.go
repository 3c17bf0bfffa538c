package user

// Role is the fixed marina staff hierarchy. Levels are totally ordered:
// an inspector can only file field observations, an admin can do everything.
type Role string

const (
	RoleInspector Role = "inspector"
	RoleOperator  Role = "operator"
	RoleManager   Role = "manager"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleInspector, RoleOperator, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level returns the position in the role ladder, 0 for unknown roles.
func (r Role) Level() int {
	switch r {
	case RoleInspector:
		return 1
	case RoleOperator:
		return 2
	case RoleManager:
		return 3
	case RoleAdmin:
		return 4
	default:
		return 0
	}
}

func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level() && r.IsValid() && min.IsValid()
}

func (r Role) Label() string {
	switch r {
	case RoleInspector:
		return "Inspector"
	case RoleOperator:
		return "Operator"
	case RoleManager:
		return "Manager"
	case RoleAdmin:
		return "Administrator"
	default:
		return "Unknown"
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

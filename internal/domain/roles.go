package domain

type Role string

const (
	// RoleUser is assigned to every self-registered account.
	RoleUser Role = "USER"
	// RoleAdmin is only granted out of band (direct DB update).
	RoleAdmin Role = "ADMIN"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}

// ParseRole falls back to RoleUser for unknown values.
func ParseRole(r string) Role {
	if r == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

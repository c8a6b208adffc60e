package entity

// Role represents a back-office user role.
type Role string

const (
	RoleSystemAdmin   Role = "SYSTEM_ADMIN"
	RoleCoopAdmin     Role = "COOP_ADMIN"
	RoleFieldOperator Role = "FIELD_OPERATOR"
	RoleBuyerAdmin    Role = "BUYER_ADMIN"
)

// IsValid checks whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystemAdmin, RoleCoopAdmin, RoleFieldOperator, RoleBuyerAdmin:
		return true
	default:
		return false
	}
}

package entity

// Role names carried in access tokens. They mirror UserType.
const (
	RoleCustomer = string(UserTypeCustomer)
	RoleBusiness = string(UserTypeBusiness)
)

// RolesFor returns the token roles for a user.
func RolesFor(u *User) []string {
	if u.IsBusiness() {
		return []string{RoleBusiness}
	}

	return []string{RoleCustomer}
}

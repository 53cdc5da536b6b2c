package models

type UserRole string

const (
	UserRoleGraduate    UserRole = "GRADUATE"
	UserRoleCompany     UserRole = "COMPANY"
	UserRoleInstitution UserRole = "INSTITUTION"
	UserRolePesoAdmin   UserRole = "PESO_ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleGraduate:    "Graduate",
	UserRoleCompany:     "Company",
	UserRoleInstitution: "Institution",
	UserRolePesoAdmin:   "PESO administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCompany() bool {
	return r == UserRoleCompany
}

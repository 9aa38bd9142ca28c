package domain

// Role is the authorization claim fixed per principal kind.
type Role string

const (
	RoleUser     Role = "user"
	RoleBusiness Role = "business"
)

// PrincipalKind differentiates the two account families sharing the token scheme.
type PrincipalKind string

const (
	PrincipalKindUser     PrincipalKind = "USER"
	PrincipalKindBusiness PrincipalKind = "BUSINESS"
)

// Principal is the credential view of an account used by the session flows.
// Both users and companies project into it.
type Principal struct {
	PublicID     string
	Email        string
	PasswordHash string
	Role         Role
}

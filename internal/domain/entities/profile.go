package entities

// Role is the evaluator's position on the unit's inspection team.
type Role string

const (
	RoleTitular    Role = "Titular"
	RoleSubstituto Role = "Substituto"
)

func (r Role) Valid() bool {
	return r == RoleTitular || r == RoleSubstituto
}

// UserProfile maps an authenticated user id to the evaluator identity.
//
// Storage model (DynamoDB):
//   - PK: uid
type UserProfile struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
}

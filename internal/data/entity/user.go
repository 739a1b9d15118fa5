package entity

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleSuperuser UserRole = "superuser"
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
)

type User struct {
	Base
	Username         string   `db:"username"`
	Email            string   `db:"email"`
	FirstName        string   `db:"first_name"`
	LastName         string   `db:"last_name"`
	Bio              string   `db:"bio"`
	Role             UserRole `db:"role"`
	IsStaff          bool     `db:"is_staff"`
	IsSuperuser      bool     `db:"is_superuser"`
	IsActive         bool     `db:"is_active"`
	ConfirmationCode string   `db:"confirmation_code"` // base64-encoded at rest
	PasswordHash     *string  `db:"password_hash"`
}

// Normalize derives the staff and superuser flags from the role string.
// Called on every write path before the record is persisted. Unknown or
// empty roles leave both flags untouched.
func (u *User) Normalize() {
	switch u.Role {
	case RoleAdmin:
		u.IsStaff = true
	case RoleSuperuser:
		u.IsStaff = true
		u.IsSuperuser = true
	case RoleUser, RoleModerator:
		u.IsStaff = false
		u.IsSuperuser = false
	}
}

package request

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=1,max=30"`
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"max=30"`
	LastName  string  `json:"last_name" validate:"max=30"`
	Bio       string  `json:"bio" validate:"max=500"`
	Role      string  `json:"role" validate:"omitempty,oneof=admin superuser user moderator"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=1,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=30"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin superuser user moderator"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// UpdateProfileRequest is the self-service variant; role is not accepted.
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=1,max=30"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=30"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

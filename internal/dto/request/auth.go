package request

type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ObtainTokenRequest struct {
	Email            string `json:"email" validate:"required,email"`
	ConfirmationCode string `json:"confirmation_code" validate:"required,len=8"`
}

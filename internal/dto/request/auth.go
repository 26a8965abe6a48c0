package request

type LoginRequest struct {
	UsrEmail string `json:"usr_email" validate:"required,email"`
	UsrPass  string `json:"usr_pass" validate:"required"`
}

type RegisterRequest struct {
	UsrName  string `json:"usr_name" validate:"required,min=3,max=20"`
	UsrEmail string `json:"usr_email" validate:"required,email,max=50"`
	UsrPass  string `json:"usr_pass" validate:"required,min=8,max=20"`
	UsrType  string `json:"usr_type" validate:"required"`
}

// ChangeUserTypeRequest is the only way to move a user between roles.
type ChangeUserTypeRequest struct {
	UsrType string `json:"usr_type" validate:"required"`
}

package request

type ClientCreateRequest struct {
	CliName    string `json:"cli_name" validate:"required,min=10,max=30"`
	CliEmail   string `json:"cli_email" validate:"required,email,max=50"`
	CliCPF     string `json:"cli_cpf" validate:"required,min=11,max=14"`
	CliPhone   string `json:"cli_phone" validate:"required,min=11,max=15"`
	CliAddress string `json:"cli_address" validate:"required,min=6,max=100"`
}

type ClientUpdateRequest struct {
	CliName    *string `json:"cli_name" validate:"omitempty,min=10,max=30"`
	CliEmail   *string `json:"cli_email" validate:"omitempty,email,max=50"`
	CliPhone   *string `json:"cli_phone" validate:"omitempty,min=11,max=15"`
	CliAddress *string `json:"cli_address" validate:"omitempty,min=6,max=100"`
}

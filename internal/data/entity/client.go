package entity

// Client is a shop customer. Email and CPF are unique across all
// clients; CPF and phone are stored digits-only.
type Client struct {
	BaseSimple
	Name     string `db:"cli_name"`
	Email    string `db:"cli_email"`
	CPF      string `db:"cli_cpf"`
	Phone    string `db:"cli_phone"`
	Address  string `db:"cli_address"`
	IsActive bool   `db:"cli_active"`
}

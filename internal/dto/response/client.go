package response

import (
	"time"

	"clothing-shop/internal/data/entity"
)

type ClientResponse struct {
	CliID        string    `json:"cli_id"`
	CliName      string    `json:"cli_name"`
	CliEmail     string    `json:"cli_email"`
	CliCPF       string    `json:"cli_cpf"`
	CliPhone     string    `json:"cli_phone"`
	CliAddress   string    `json:"cli_address"`
	CliActive    bool      `json:"cli_active"`
	CliCreatedat time.Time `json:"cli_createdat"`
}

func ClientToResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		CliID:        client.ID.String(),
		CliName:      client.Name,
		CliEmail:     client.Email,
		CliCPF:       client.CPF,
		CliPhone:     client.Phone,
		CliAddress:   client.Address,
		CliActive:    client.IsActive,
		CliCreatedat: client.CreatedAt,
	}
}

package usecase_test

import (
	"context"
	"testing"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"

	"clothing-shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClientWith(t *testing.T, svc *usecase.Service, email, cpf string) {
	t.Helper()

	_, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Maria da Silva",
		CliEmail:   email,
		CliCPF:     cpf,
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})
	require.NoError(t, err)
}

func TestClientCreate_NormalizesCPFAndPhone(t *testing.T) {
	svc := newTestService(t)

	client, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Maria da Silva",
		CliEmail:   "cliente@example.com",
		CliCPF:     "529.982.247-25",
		CliPhone:   "(11) 98765-4321",
		CliAddress: "Rua das Flores, 100",
	})

	require.NoError(t, err)
	assert.Equal(t, "52998224725", client.CliCPF)
	assert.Equal(t, "11987654321", client.CliPhone)
	assert.True(t, client.CliActive)
}

func TestClientCreate_RejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	seedClientWith(t, svc, "cliente@example.com", "52998224725")

	_, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Outra Pessoa Qualquer",
		CliEmail:   "cliente@example.com",
		CliCPF:     "11144477735",
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})

	assert.ErrorIs(t, err, entity.ErrDuplicateClientEmail)
}

func TestClientCreate_RejectsDuplicateCPFEvenFormatted(t *testing.T) {
	svc := newTestService(t)
	seedClientWith(t, svc, "cliente@example.com", "52998224725")

	// Same CPF, different punctuation and email.
	_, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Outra Pessoa Qualquer",
		CliEmail:   "outra@example.com",
		CliCPF:     "529.982.247-25",
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})

	assert.ErrorIs(t, err, entity.ErrDuplicateClientCPF)
}


func TestClientUpdate_PartialFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Maria da Silva",
		CliEmail:   "cliente@example.com",
		CliCPF:     "52998224725",
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})
	require.NoError(t, err)

	newPhone := "(21) 91234-5678"
	updated, err := svc.Client.Update(context.Background(), uuid.MustParse(created.CliID), &request.ClientUpdateRequest{
		CliPhone: &newPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, "21912345678", updated.CliPhone)
	// Untouched fields stay as created.
	assert.Equal(t, created.CliName, updated.CliName)
	assert.Equal(t, created.CliEmail, updated.CliEmail)
	assert.Equal(t, created.CliCPF, updated.CliCPF)
}

func TestClientList_FiltersByName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Maria da Silva",
		CliEmail:   "maria@example.com",
		CliCPF:     "52998224725",
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})
	require.NoError(t, err)

	_, err = svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Pedro Henrique",
		CliEmail:   "pedro@example.com",
		CliCPF:     "11144477735",
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})
	require.NoError(t, err)

	page := request.PaginatedRequest{Page: 1, PerPage: 10}

	result, err := svc.Client.List(context.Background(), repository.ClientFilter{Name: "maria"}, page)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Maria da Silva", result.Data[0].CliName)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestClientDelete_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Client.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrClientNotFound)
}

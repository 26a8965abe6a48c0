package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, StatusEmAndamento.CanTransitionTo(StatusPagamentoConfirmado))
	assert.True(t, StatusEmAndamento.CanTransitionTo(StatusCancelado))
	assert.False(t, StatusEmAndamento.CanTransitionTo(StatusEntregue))

	assert.True(t, StatusACaminho.CanTransitionTo(StatusEntregue))
	assert.False(t, StatusACaminho.CanTransitionTo(StatusCancelado))

	assert.True(t, StatusSolicitadoReembolso.CanTransitionTo(StatusReembolsado))

	// Terminal states go nowhere.
	for _, next := range ValidStatusTypes {
		assert.False(t, StatusCancelado.CanTransitionTo(OrderStatus(next)))
		assert.False(t, StatusReembolsado.CanTransitionTo(OrderStatus(next)))
	}
}

func TestEnumMembership(t *testing.T) {
	assert.True(t, IsValidUserType("estoquista"))
	assert.False(t, IsValidUserType("diretor"))

	assert.True(t, IsValidSize("gg"))
	assert.False(t, IsValidSize("xgg"))

	assert.True(t, IsValidColor("lilás"))
	assert.False(t, IsValidColor("magenta"))

	assert.True(t, IsValidPaymentType("boleto"))
	assert.False(t, IsValidPaymentType("cheque"))
}

package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors carry the exact detail strings the API exposes. The
// handler layer maps them onto HTTP status codes: not-found → 404,
// duplicates and invalid values → 400.
var (
	ErrInvalidCredentials = errors.New("Credenciais inválidas.")

	ErrUserNotFound    = errors.New("Não foi possível encontrar este usuário.")
	ErrClientNotFound  = errors.New("Não foi possível encontrar este cliente.")
	ErrProductNotFound = errors.New("Não foi possível encontrar este produto.")
	ErrOrderNotFound   = errors.New("Não foi possível encontrar este pedido.")
	ErrImageNotFound   = errors.New("Não foi possível encontrar esta imagem.")

	ErrDuplicateUserEmail   = errors.New("Já existe um usuário cadastrado com este email.")
	ErrDuplicateClientEmail = errors.New("Já existe um cliente cadastrado com este email.")
	ErrDuplicateClientCPF   = errors.New("Já existe um cliente cadastrado com este CPF.")

	ErrOrderClientUnknown   = errors.New("Cliente não reconhecido.")
	ErrOrderProductsMissing = errors.New("Um ou mais produtos não foram encontrados.")
)

// EnumError reports a value outside one of the closed sets, together
// with the full list of accepted values. It serializes as
// {"msg": ..., "tipos_validos": [...]}.
type EnumError struct {
	Msg        string   `json:"msg"`
	ValidTypes []string `json:"tipos_validos"`
}

func (e *EnumError) Error() string {
	return e.Msg
}

func NewEnumError(msg string, validTypes []string) *EnumError {
	return &EnumError{Msg: msg, ValidTypes: validTypes}
}

// OutOfStockError names the first product found without stock. Order
// placement aborts before any stock mutation is committed.
type OutOfStockError struct {
	ProductName string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("Produto '%s' está sem estoque.", e.ProductName)
}

// TransitionError reports a status change the lifecycle graph forbids.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("Transição de status inválida: '%s' para '%s'.", e.From, e.To)
}

package entity

import "slices"

// Every enumerated field in the system is a closed set: unknown values
// are rejected at the edge, before any write reaches the store.

type UserRole string

const (
	RoleAdministrador UserRole = "administrador"
	RoleGerente       UserRole = "gerente"
	RoleVendedor      UserRole = "vendedor"
	RoleMarketing     UserRole = "marketing"
	RoleEstoquista    UserRole = "estoquista"
	RoleAtendente     UserRole = "atendente"
)

var ValidUserTypes = []string{
	"administrador",
	"gerente",
	"vendedor",
	"marketing",
	"estoquista",
	"atendente",
}

func IsValidUserType(v string) bool {
	return slices.Contains(ValidUserTypes, v)
}

var ValidSizeTypes = []string{"pp", "p", "m", "g", "gg"}

var ValidColorTypes = []string{
	"amarelo",
	"azul",
	"bege",
	"branco",
	"bronze",
	"ciano",
	"cinza",
	"laranja",
	"lilás",
	"marrom",
	"preto",
	"rosa",
	"roxo",
	"verde",
	"vermelho",
}

var ValidCategoryTypes = []string{"masculino", "feminino", "menina", "menino"}

var ValidSectionTypes = []string{"blusas", "calças", "vestidos", "calçados", "shorts", "acessórios"}

func IsValidSize(v string) bool     { return slices.Contains(ValidSizeTypes, v) }
func IsValidColor(v string) bool    { return slices.Contains(ValidColorTypes, v) }
func IsValidCategory(v string) bool { return slices.Contains(ValidCategoryTypes, v) }
func IsValidSection(v string) bool  { return slices.Contains(ValidSectionTypes, v) }

type PaymentType string

const (
	PaymentCredito PaymentType = "crédito"
	PaymentDebito  PaymentType = "débito"
	PaymentPix     PaymentType = "pix"
	PaymentBoleto  PaymentType = "boleto"
)

var ValidPaymentTypes = []string{"crédito", "débito", "pix", "boleto"}

func IsValidPaymentType(v string) bool {
	return slices.Contains(ValidPaymentTypes, v)
}

type OrderStatus string

const (
	StatusEmAndamento         OrderStatus = "em andamento"
	StatusPagamentoConfirmado OrderStatus = "pagamento confirmado"
	StatusPreparandoEntrega   OrderStatus = "preparando entrega"
	StatusACaminho            OrderStatus = "a caminho"
	StatusEntregue            OrderStatus = "entregue"
	StatusCancelado           OrderStatus = "cancelado"
	StatusSolicitadoReembolso OrderStatus = "solicitado reembolso"
	StatusReembolsado         OrderStatus = "reembolsado"
)

var ValidStatusTypes = []string{
	"em andamento",
	"pagamento confirmado",
	"preparando entrega",
	"a caminho",
	"entregue",
	"cancelado",
	"solicitado reembolso",
	"reembolsado",
}

func IsValidStatus(v string) bool {
	return slices.Contains(ValidStatusTypes, v)
}

// statusTransitions is the order lifecycle graph. New orders always
// start at "em andamento". "cancelado" and "reembolsado" are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusEmAndamento:         {StatusPagamentoConfirmado, StatusCancelado},
	StatusPagamentoConfirmado: {StatusPreparandoEntrega, StatusCancelado, StatusSolicitadoReembolso},
	StatusPreparandoEntrega:   {StatusACaminho, StatusCancelado, StatusSolicitadoReembolso},
	StatusACaminho:            {StatusEntregue, StatusSolicitadoReembolso},
	StatusEntregue:            {StatusSolicitadoReembolso},
	StatusSolicitadoReembolso: {StatusReembolsado},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(statusTransitions[s], next)
}

package request

type OrderCreateRequest struct {
	OrderCli     string   `json:"order_cli" validate:"required,uuid"`
	OrderProds   []string `json:"order_prods" validate:"required,min=1,dive,uuid"`
	OrderTotal   float64  `json:"order_total" validate:"required,gt=0"`
	OrderTypepay string   `json:"order_typepay" validate:"required"`
	OrderAddress string   `json:"order_address" validate:"required,min=8,max=100"`
	OrderSection string   `json:"order_section" validate:"required"`
}

// OrderUpdateRequest carries the only mutable order field.
type OrderUpdateRequest struct {
	OrderStatus string `json:"order_status" validate:"required"`
}

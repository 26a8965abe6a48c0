package response

import (
	"time"

	"clothing-shop/internal/data/entity"
)

type OrderResponse struct {
	OrderID        string    `json:"order_id"`
	OrderCli       string    `json:"order_cli"`
	OrderProds     []string  `json:"order_prods"`
	OrderTotal     float64   `json:"order_total"`
	OrderTypepay   string    `json:"order_typepay"`
	OrderAddress   string    `json:"order_address"`
	OrderSection   string    `json:"order_section"`
	OrderStatus    string    `json:"order_status"`
	OrderPeriod    time.Time `json:"order_period"`
	OrderCreatedat time.Time `json:"order_createdat"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	prods := make([]string, len(order.ProductIDs))
	for i, id := range order.ProductIDs {
		prods[i] = id.String()
	}

	return OrderResponse{
		OrderID:        order.ID.String(),
		OrderCli:       order.ClientID.String(),
		OrderProds:     prods,
		OrderTotal:     order.Total,
		OrderTypepay:   string(order.PaymentType),
		OrderAddress:   order.Address,
		OrderSection:   order.Section,
		OrderStatus:    string(order.Status),
		OrderPeriod:    order.Period,
		OrderCreatedat: order.CreatedAt,
	}
}

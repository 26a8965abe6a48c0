package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order ties a client to a list of product references. The list keeps
// duplicates: each occurrence consumed one unit of stock at placement.
type Order struct {
	BaseSimple
	ClientID    uuid.UUID   `db:"order_cli"`
	ProductIDs  []uuid.UUID `db:"order_prods"`
	Total       float64     `db:"order_total"`
	PaymentType PaymentType `db:"order_typepay"`
	Address     string      `db:"order_address"`
	Section     string      `db:"order_section"`
	Status      OrderStatus `db:"order_status"`
	Period      time.Time   `db:"order_period"`
}

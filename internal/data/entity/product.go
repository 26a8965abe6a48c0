package entity

import "time"

// Product is a catalog item. Stock only ever moves down, one unit per
// order line occurrence, inside the order placement transaction.
type Product struct {
	Base
	Name         string     `db:"prod_name"`
	Description  string     `db:"prod_desc"`
	Price        float64    `db:"prod_price"`
	Category     string     `db:"prod_cat"`
	Section      string     `db:"prod_section"`
	Barcode      string     `db:"prod_barcode"`
	Sizes        []string   `db:"prod_size"`
	Colors       []string   `db:"prod_color"`
	Images       []string   `db:"prod_imgs"`
	ExpiryDate   *time.Time `db:"prod_dtval"`
	InitialStock int        `db:"prod_initialstock"`
	Stock        int        `db:"prod_stock"`
}

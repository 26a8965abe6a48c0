package response

import (
	"time"

	"clothing-shop/internal/data/entity"
)

type ProductResponse struct {
	ProdID           string     `json:"prod_id"`
	ProdName         string     `json:"prod_name"`
	ProdDesc         string     `json:"prod_desc"`
	ProdPrice        float64    `json:"prod_price"`
	ProdCat          string     `json:"prod_cat"`
	ProdSection      string     `json:"prod_section"`
	ProdBarcode      string     `json:"prod_barcode"`
	ProdSize         []string   `json:"prod_size"`
	ProdColor        []string   `json:"prod_color"`
	ProdImgs         []string   `json:"prod_imgs"`
	ProdDtval        *time.Time `json:"prod_dtval,omitempty"`
	ProdInitialstock int        `json:"prod_initialstock"`
	ProdStock        int        `json:"prod_stock"`
	ProdCreatedat    time.Time  `json:"prod_createdat"`
	ProdLastupdate   time.Time  `json:"prod_lastupdate"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ProdID:           product.ID.String(),
		ProdName:         product.Name,
		ProdDesc:         product.Description,
		ProdPrice:        product.Price,
		ProdCat:          product.Category,
		ProdSection:      product.Section,
		ProdBarcode:      product.Barcode,
		ProdSize:         product.Sizes,
		ProdColor:        product.Colors,
		ProdImgs:         product.Images,
		ProdDtval:        product.ExpiryDate,
		ProdInitialstock: product.InitialStock,
		ProdStock:        product.Stock,
		ProdCreatedat:    product.CreatedAt,
		ProdLastupdate:   product.UpdatedAt,
	}
}

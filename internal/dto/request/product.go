package request

import "time"

type ProductCreateRequest struct {
	ProdName         string     `json:"prod_name" validate:"required,min=3,max=50"`
	ProdDesc         string     `json:"prod_desc" validate:"omitempty,max=100"`
	ProdPrice        float64    `json:"prod_price" validate:"required,gt=0"`
	ProdCat          string     `json:"prod_cat" validate:"required"`
	ProdSection      string     `json:"prod_section" validate:"required"`
	ProdBarcode      string     `json:"prod_barcode" validate:"required,min=13,max=43"`
	ProdSize         []string   `json:"prod_size"`
	ProdColor        []string   `json:"prod_color"`
	ProdImgs         []string   `json:"prod_imgs"`
	ProdDtval        *time.Time `json:"prod_dtval"`
	ProdInitialstock int        `json:"prod_initialstock" validate:"gte=0"`
}

type ProductUpdateRequest struct {
	ProdName    *string    `json:"prod_name" validate:"omitempty,min=3,max=50"`
	ProdDesc    *string    `json:"prod_desc" validate:"omitempty,max=100"`
	ProdPrice   *float64   `json:"prod_price" validate:"omitempty,gt=0"`
	ProdCat     *string    `json:"prod_cat"`
	ProdSection *string    `json:"prod_section"`
	ProdSize    *[]string  `json:"prod_size"`
	ProdColor   *[]string  `json:"prod_color"`
	ProdImgs    *[]string  `json:"prod_imgs"`
	ProdDtval   *time.Time `json:"prod_dtval"`
}

// UpdateImagesRequest replaces the whole ordered image list.
type UpdateImagesRequest struct {
	ProdImgs []string `json:"prod_imgs" validate:"required"`
}

type DeleteImageRequest struct {
	Image string `json:"image" validate:"required"`
}

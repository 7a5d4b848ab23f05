package models

// Image is a product image as returned by the catalog API. Images are created
// by upload and never mutated or deleted through the console.
type Image struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	URLStandard string `json:"url_standard"`
}

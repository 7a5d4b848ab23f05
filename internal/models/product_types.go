package models

// ProductTypePhysical and ProductTypeDigital are the only product types the
// catalog API accepts.
const (
	ProductTypePhysical = "physical"
	ProductTypeDigital  = "digital"
)

// Product mirrors the catalog API's product resource.
//
// Weight and InventoryLevel are whole numbers by contract, but they are kept
// as float64 because the console's validation is advisory only: a staged edit
// with a fractional weight is still submitted as-is, and the wire value must
// survive the round trip unchanged.
type Product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"` // "physical" or "digital"
	SKU            string  `json:"sku"`
	Weight         float64 `json:"weight"`
	Price          float64 `json:"price"`
	BrandID        int64   `json:"brand_id"`
	BrandName      string  `json:"brand_name"`
	InventoryLevel float64 `json:"inventory_level"`
}

// ProductPage is one fetched page of the product listing, tagged with its
// page number and the next page to request (nil once the server reports the
// last page).
type ProductPage struct {
	Products    []Product
	CurrentPage int
	NextPage    *int
}

package models

// Brand is the catalog API's brand resource. Brands are read-only from the
// console's point of view.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

package entity

// Category representa una categoría de productos.
// Products es un resumen de solo lectura derivado por el servidor.
type Category struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Products []ProductSummary `json:"products,omitempty"`
}

package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo; CategoryID referencia una Category existente.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId"`
}

// MarshalJSON escribe price como número JSON, que es lo que intercambia el backend.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64       `json:"id"`
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Price       json.Number `json:"price"`
		CategoryID  int64       `json:"categoryId"`
	}{p.ID, p.Name, p.Description, PriceNumber(p.Price), p.CategoryID})
}

// PriceNumber representación numérica JSON de un precio.
func PriceNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ProductSummary es la vista de producto embebida en una Category.
type ProductSummary = Product

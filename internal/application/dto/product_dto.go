package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar (PUT) un producto.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId" validate:"required,gt=0"`
}

func (r ProductRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Price       json.Number `json:"price"`
		CategoryID  int64       `json:"categoryId"`
	}{r.Name, r.Description, entity.PriceNumber(r.Price), r.CategoryID})
}

// ProductPatchRequest actualización parcial.
type ProductPatchRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"categoryId" validate:"omitempty,gt=0"`
}

func (r ProductPatchRequest) MarshalJSON() ([]byte, error) {
	var price *json.Number
	if r.Price != nil {
		n := entity.PriceNumber(*r.Price)
		price = &n
	}
	return json.Marshal(struct {
		Name        *string      `json:"name"`
		Description *string      `json:"description"`
		Price       *json.Number `json:"price"`
		CategoryID  *int64       `json:"categoryId"`
	}{r.Name, r.Description, price, r.CategoryID})
}

// ProductResponse salida de un producto.
type ProductResponse = entity.Product

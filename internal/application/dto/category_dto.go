package dto

// CategoryRequest entrada para crear o reemplazar (PUT) una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CategoryPatchRequest actualización parcial.
type CategoryPatchRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// CategoryResponse salida de una categoría con sus productos.
type CategoryResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

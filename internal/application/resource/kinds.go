package resource

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// Nombres de campo de los formularios.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategoryID  = "categoryId"
)

// CategoryKind descriptor de categorías: un único campo obligatorio. La validación
// ignora espacios pero el nombre se envía tal cual se escribió.
func CategoryKind() Kind[entity.Category, dto.CategoryRequest] {
	return Kind[entity.Category, dto.CategoryRequest]{
		Name:   "category",
		Plural: "categories",
		Fields: []string{FieldName},
		ID:     func(c entity.Category) int64 { return c.ID },
		Defaults: func() Fields {
			return Fields{FieldName: ""}
		},
		FromEntity: func(c entity.Category) Fields {
			return Fields{FieldName: c.Name}
		},
		Validate: func(f Fields) error {
			if strings.TrimSpace(f[FieldName]) == "" {
				return &domain.ValidationError{Message: "Category name is required"}
			}
			return nil
		},
		Payload: func(f Fields) (dto.CategoryRequest, error) {
			return dto.CategoryRequest{Name: f[FieldName]}, nil
		},
		Messages: NewMessages("category", "categories"),
	}
}

// ProductKind descriptor de productos. categories da las categorías conocidas;
// la primera se usa como valor por defecto del selector al crear.
func ProductKind(categories func() []entity.Category) Kind[entity.Product, dto.ProductRequest] {
	return Kind[entity.Product, dto.ProductRequest]{
		Name:   "product",
		Plural: "products",
		Fields: []string{FieldName, FieldDescription, FieldPrice, FieldCategoryID},
		ID:     func(p entity.Product) int64 { return p.ID },
		Defaults: func() Fields {
			f := Fields{FieldName: "", FieldDescription: "", FieldPrice: "", FieldCategoryID: ""}
			if categories != nil {
				if cats := categories(); len(cats) > 0 {
					f[FieldCategoryID] = strconv.FormatInt(cats[0].ID, 10)
				}
			}
			return f
		},
		FromEntity: func(p entity.Product) Fields {
			f := Fields{
				FieldName:        p.Name,
				FieldDescription: p.Description,
				FieldPrice:       p.Price.String(),
				FieldCategoryID:  "",
			}
			if p.CategoryID > 0 {
				f[FieldCategoryID] = strconv.FormatInt(p.CategoryID, 10)
			}
			return f
		},
		Validate: validateProduct,
		Payload: func(f Fields) (dto.ProductRequest, error) {
			if err := validateProduct(f); err != nil {
				return dto.ProductRequest{}, err
			}
			price, _ := decimal.NewFromString(strings.TrimSpace(f[FieldPrice]))
			categoryID, _ := strconv.ParseInt(strings.TrimSpace(f[FieldCategoryID]), 10, 64)
			return dto.ProductRequest{
				Name:        f[FieldName],
				Description: f[FieldDescription],
				Price:       price,
				CategoryID:  categoryID,
			}, nil
		},
		Messages: NewMessages("product", "products"),
	}
}

func validateProduct(f Fields) error {
	name := strings.TrimSpace(f[FieldName])
	price := strings.TrimSpace(f[FieldPrice])
	category := strings.TrimSpace(f[FieldCategoryID])
	if name == "" || price == "" || category == "" {
		return &domain.ValidationError{Message: "Please fill in all required fields"}
	}
	if d, err := decimal.NewFromString(price); err != nil || d.IsNegative() {
		return &domain.ValidationError{Message: "Please enter a valid price"}
	}
	if id, err := strconv.ParseInt(category, 10, 64); err != nil || id <= 0 {
		return &domain.ValidationError{Message: "Please select a valid category"}
	}
	return nil
}

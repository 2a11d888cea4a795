package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Las respuestas embeben sus productos.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// Create crea una categoría vacía.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, nil), nil
}

// List devuelve todas las categorías con sus productos.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[int64][]*entity.Product, len(categories))
	for _, p := range all {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c, byCategory[c.ID]))
	}
	return out, nil
}

// GetByID obtiene una categoría. ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.products.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, products), nil
}

// Update reemplaza el nombre de la categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	return uc.Patch(ctx, id, dto.CategoryPatchRequest{Name: &in.Name})
}

// Patch aplica solo los campos presentes.
func (uc *CategoryUseCase) Patch(ctx context.Context, id int64, in dto.CategoryPatchRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	products, err := uc.products.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, products), nil
}

// Delete elimina la categoría (y sus productos, por cascada). ErrNotFound si no existía.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toCategoryResponse(c *entity.Category, products []*entity.Product) *dto.CategoryResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *p)
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Products: items}
}

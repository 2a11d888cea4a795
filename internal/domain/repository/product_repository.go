package repository

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

var (
	_ ports.ResourceTransport[entity.Category, dto.CategoryRequest] = (*Resource[entity.Category, dto.CategoryRequest])(nil)
	_ ports.ResourceTransport[entity.Product, dto.ProductRequest]   = (*Resource[entity.Product, dto.ProductRequest])(nil)
)

// Resource CRUD REST genérico sobre una ruta base (/api/categories, /api/products).
type Resource[T any, P any] struct {
	c    *Client
	path string
}

// NewResource construye el transporte para path.
func NewResource[T any, P any](c *Client, path string) *Resource[T, P] {
	return &Resource[T, P]{c: c, path: path}
}

// NewCategories transporte de /api/categories.
func NewCategories(c *Client) *Resource[entity.Category, dto.CategoryRequest] {
	return NewResource[entity.Category, dto.CategoryRequest](c, "/api/categories")
}

// NewProducts transporte de /api/products.
func NewProducts(c *Client) *Resource[entity.Product, dto.ProductRequest] {
	return NewResource[entity.Product, dto.ProductRequest](c, "/api/products")
}

func (r *Resource[T, P]) item(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.doJSON(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *Resource[T, P]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.c.doJSON(ctx, http.MethodGet, r.item(id), nil, &out)
	return out, err
}

func (r *Resource[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var out T
	err := r.c.doJSON(ctx, http.MethodPost, r.path, payload, &out)
	return out, err
}

func (r *Resource[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	var out T
	err := r.c.doJSON(ctx, http.MethodPut, r.item(id), payload, &out)
	return out, err
}

// Patch envía solo los campos presentes en payload.
func (r *Resource[T, P]) Patch(ctx context.Context, id int64, payload any) (T, error) {
	var out T
	err := r.c.doJSON(ctx, http.MethodPatch, r.item(id), payload, &out)
	return out, err
}

func (r *Resource[T, P]) Delete(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, r.item(id), nil, nil)
}

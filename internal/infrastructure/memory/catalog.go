// Package memory implementa los repositorios del backend en memoria.
// Sirve para desarrollo sin PostgreSQL (cmd/api --memory) y para tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.UserRepository     = (*Users)(nil)
)

// Catalog guarda categorías y productos; borrar una categoría borra sus productos.
type Catalog struct {
	mu         sync.RWMutex
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	nextCat    int64
	nextProd   int64
}

// NewCatalog crea un catálogo vacío.
func NewCatalog() *Catalog {
	return &Catalog{categories: map[int64]entity.Category{}, products: map[int64]entity.Product{}}
}

// Categories vista del catálogo como CategoryRepository.
func (c *Catalog) Categories() *CategoryRepo { return &CategoryRepo{c} }

// Products vista del catálogo como ProductRepository.
func (c *Catalog) Products() *ProductRepo { return &ProductRepo{c} }

// CategoryRepo repositorio de categorías en memoria.
type CategoryRepo struct{ c *Catalog }

func (r *CategoryRepo) Create(_ context.Context, cat *entity.Category) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.nextCat++
	cat.ID = r.c.nextCat
	r.c.categories[cat.ID] = entity.Category{ID: cat.ID, Name: cat.Name}
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	cat, ok := r.c.categories[id]
	if !ok {
		return nil, nil
	}
	return &cat, nil
}

func (r *CategoryRepo) Update(_ context.Context, cat *entity.Category) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.categories[cat.ID]; !ok {
		return domain.ErrNotFound
	}
	r.c.categories[cat.ID] = entity.Category{ID: cat.ID, Name: cat.Name}
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.c.categories))
	for _, cat := range r.c.categories {
		cat := cat
		out = append(out, &cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.categories[id]; !ok {
		return false, nil
	}
	delete(r.c.categories, id)
	for pid, p := range r.c.products {
		if p.CategoryID == id {
			delete(r.c.products, pid)
		}
	}
	return true, nil
}

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct{ c *Catalog }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.categories[p.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.c.nextProd++
	p.ID = r.c.nextProd
	r.c.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	p, ok := r.c.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.c.categories[p.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.c.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) List(context.Context) ([]*entity.Product, error) {
	return r.filter(func(entity.Product) bool { return true }), nil
}

func (r *ProductRepo) ListByCategory(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *ProductRepo) filter(keep func(entity.Product) bool) []*entity.Product {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.c.products))
	for _, p := range r.c.products {
		if keep(p) {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.products[id]; !ok {
		return false, nil
	}
	delete(r.c.products, id)
	return true, nil
}

// Users repositorio de usuarios en memoria; username único.
type Users struct {
	mu     sync.RWMutex
	byName map[string]entity.User
	nextID int64
}

// NewUsers crea el repositorio vacío.
func NewUsers() *Users {
	return &Users{byName: map[string]entity.User{}}
}

func (u *Users) Create(_ context.Context, user *entity.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.byName[user.Username]; ok {
		return domain.ErrUserAlreadyExists
	}
	u.nextID++
	user.ID = u.nextID
	u.byName[user.Username] = *user
	return nil
}

func (u *Users) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.byName[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

package resource_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/resource"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

func TestNewMessages(t *testing.T) {
	m := resource.NewMessages("category", "categories")
	assert.Equal(t, "Failed to load categories", m.LoadFailed)
	assert.Equal(t, "Category created successfully!", m.Created)
	assert.Equal(t, "Category updated successfully!", m.Updated)
	assert.Equal(t, "Category deleted successfully!", m.Deleted)
	assert.Equal(t, "Are you sure you want to delete this category?", m.ConfirmDelete)
}

func TestCategoryKind(t *testing.T) {
	k := resource.CategoryKind()

	var ve *domain.ValidationError
	require.ErrorAs(t, k.Validate(resource.Fields{"name": "   "}), &ve)
	assert.Equal(t, "Category name is required", ve.Message)

	p, err := k.Payload(resource.Fields{"name": " Tools "})
	require.NoError(t, err)
	assert.Equal(t, dto.CategoryRequest{Name: " Tools "}, p)

	assert.Equal(t, resource.Fields{"name": "Toys"}, k.FromEntity(entity.Category{ID: 2, Name: "Toys"}))
}

func TestProductKind_SinCategoriasDefaultVacio(t *testing.T) {
	k := resource.ProductKind(func() []entity.Category { return nil })
	assert.Equal(t, "", k.Defaults()["categoryId"])
}

// fakeCategories transporte mínimo para el controller de categorías.
type fakeCategories struct {
	items []entity.Category
	last  dto.CategoryRequest
}

func (f *fakeCategories) List(context.Context) ([]entity.Category, error) { return f.items, nil }
func (f *fakeCategories) Get(context.Context, int64) (entity.Category, error) {
	return entity.Category{}, nil
}
func (f *fakeCategories) Create(_ context.Context, in dto.CategoryRequest) (entity.Category, error) {
	f.last = in
	c := entity.Category{ID: int64(len(f.items) + 1), Name: in.Name}
	f.items = append(f.items, c)
	return c, nil
}
func (f *fakeCategories) Update(context.Context, int64, dto.CategoryRequest) (entity.Category, error) {
	return entity.Category{}, nil
}
func (f *fakeCategories) Patch(context.Context, int64, any) (entity.Category, error) {
	return entity.Category{}, nil
}
func (f *fakeCategories) Delete(context.Context, int64) error { return nil }

func TestCategoryController_MismoFlujo(t *testing.T) {
	ctx := context.Background()
	tr := &fakeCategories{}
	notes := &recorder{}
	ctrl := resource.NewController(resource.CategoryKind(), resource.Deps[entity.Category, dto.CategoryRequest]{
		Transport: tr, Sessions: fixedSession{adminSession}, Notifier: notes, Logger: zerolog.Nop(),
	})

	require.NoError(t, ctrl.OpenCreate())
	require.NoError(t, ctrl.SetField("name", "Garden"))
	require.NoError(t, ctrl.Submit(ctx))

	assert.Equal(t, "Garden", tr.last.Name)
	assert.Equal(t, "Category created successfully!", notes.last().msg)
	require.Len(t, ctrl.Items(), 1)

	denied := resource.NewController(resource.CategoryKind(), resource.Deps[entity.Category, dto.CategoryRequest]{
		Transport: tr, Sessions: fixedSession{userSession}, Notifier: notes, Logger: zerolog.Nop(),
	})
	assert.Error(t, denied.Remove(ctx, 1))
	assert.Equal(t, "You do not have the authority to delete a category. Admin role required.", notes.last().msg)
}

func TestProductKind_PayloadEnviaNombreSinRecortar(t *testing.T) {
	k := resource.ProductKind(nil)
	p, err := k.Payload(resource.Fields{"name": " Drill ", "description": "", "price": "2.50", "categoryId": "3"})
	require.NoError(t, err)
	assert.Equal(t, " Drill ", p.Name)
	assert.Equal(t, int64(3), p.CategoryID)
	assert.Equal(t, "2.5", p.Price.String())
}

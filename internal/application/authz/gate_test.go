package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-admin/internal/application/authz"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

var (
	admin = &entity.Session{Identity: entity.Identity{ID: 1, Username: "alice", Role: entity.RoleAdmin}}
	user  = &entity.Session{Identity: entity.Identity{ID: 2, Username: "bob", Role: entity.RoleUser}}

	mutations = []authz.Action{authz.ActionCreate, authz.ActionUpdate, authz.ActionDelete}
	resources = []string{"category", "product"}
)

func TestCanPerform_AdminPuedeTodo(t *testing.T) {
	for _, r := range resources {
		for _, a := range append(mutations, authz.ActionRead) {
			d := authz.CanPerform(admin, a, r)
			assert.True(t, d.Allowed, "%s %s", a, r)
			assert.Empty(t, d.Reason())
		}
	}
}

func TestCanPerform_UserNoMuta(t *testing.T) {
	for _, r := range resources {
		for _, a := range mutations {
			d := authz.CanPerform(user, a, r)
			assert.False(t, d.Allowed, "%s %s", a, r)
			assert.NotEmpty(t, d.Reason())
		}
	}
}

func TestCanPerform_LecturaAnonima(t *testing.T) {
	for _, r := range resources {
		assert.True(t, authz.CanPerform(nil, authz.ActionRead, r).Allowed)
		assert.True(t, authz.CanPerform(user, authz.ActionRead, r).Allowed)
		assert.False(t, authz.CanPerform(nil, authz.ActionCreate, r).Allowed)
	}
}

func TestCanPerform_MensajesDeDenegacion(t *testing.T) {
	assert.Equal(t,
		"You do not have the authority to create a product. Admin role required.",
		authz.CanPerform(user, authz.ActionCreate, "product").Reason())
	assert.Equal(t,
		"You do not have the authority to edit a category. Admin role required.",
		authz.CanPerform(user, authz.ActionUpdate, "category").Reason())
	assert.Equal(t,
		"You do not have the authority to delete a category. Admin role required.",
		authz.CanPerform(nil, authz.ActionDelete, "category").Reason())
}

// Misma entrada, misma decisión.
func TestCanPerform_Pura(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, authz.CanPerform(user, authz.ActionDelete, "product"), authz.CanPerform(user, authz.ActionDelete, "product"))
		assert.Equal(t, authz.CanPerform(admin, authz.ActionDelete, "product"), authz.CanPerform(admin, authz.ActionDelete, "product"))
	}
}

func TestCanPerform_RolDesconocidoNoEsAdmin(t *testing.T) {
	odd := &entity.Session{Identity: entity.Identity{Username: "x", Role: "admin"}}
	assert.False(t, authz.CanPerform(odd, authz.ActionCreate, "product").Allowed, "la comparación distingue mayúsculas")
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/resource"
	"github.com/jhoicas/catalogo-admin/internal/application/routing"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// screen pantalla de listado con formulario para un tipo de recurso.
type screen[T any, P any] struct {
	path   string
	ctrl   *resource.Controller[T, P]
	load   func(ctx context.Context) error
	render func(items []T)
}

func (a *App) categoryScreen() screen[entity.Category, dto.CategoryRequest] {
	return screen[entity.Category, dto.CategoryRequest]{
		path:   routing.PathCategories,
		ctrl:   a.categories,
		load:   a.categories.Refresh,
		render: a.renderCategories,
	}
}

func (a *App) productScreen() screen[entity.Product, dto.ProductRequest] {
	return screen[entity.Product, dto.ProductRequest]{
		path:   routing.PathProducts,
		ctrl:   a.products,
		load:   a.loadProducts,
		render: a.renderProducts,
	}
}

// loadProducts pide productos y categorías en paralelo. El fallo de categorías
// solo deja el selector vacío.
func (a *App) loadProducts(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		if err := a.lookup.Refresh(ctx); err != nil {
			a.log.Debug().Err(err).Msg("categorías para el selector")
		}
		return nil
	})
	g.Go(func() error {
		return a.products.Refresh(ctx)
	})
	return g.Wait()
}

func runScreen[T any, P any](ctx context.Context, a *App, s screen[T, P], args []string) error {
	if err := a.enter(s.path); err != nil {
		return err
	}
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}
	kind := s.ctrl.Kind()

	switch sub {
	case "list":
		if err := s.load(ctx); err != nil {
			return reported(err)
		}
		s.render(s.ctrl.Items())
		return nil

	case "create":
		fs := a.flagSet(kind.Plural + " create")
		values := fieldFlags(fs, kind.Fields)
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		if err := s.load(ctx); err != nil {
			return reported(err)
		}
		if err := s.ctrl.OpenCreate(); err != nil {
			return reported(err)
		}
		if err := submit(ctx, s.ctrl, changedFields(fs, values)); err != nil {
			return err
		}
		s.render(s.ctrl.Items())
		return nil

	case "edit":
		fs := a.flagSet(kind.Plural + " edit")
		values := fieldFlags(fs, kind.Fields)
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		id, err := parseID(fs.Args())
		if err != nil {
			return err
		}
		if err := s.load(ctx); err != nil {
			return reported(err)
		}
		target, ok := findItem(s.ctrl, id)
		if !ok {
			return fmt.Errorf("%s %d no encontrado", kind.Name, id)
		}
		if err := s.ctrl.OpenEdit(target); err != nil {
			return reported(err)
		}
		if err := submit(ctx, s.ctrl, changedFields(fs, values)); err != nil {
			return err
		}
		s.render(s.ctrl.Items())
		return nil

	case "delete":
		fs := a.flagSet(kind.Plural + " delete")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		id, err := parseID(fs.Args())
		if err != nil {
			return err
		}
		err = s.ctrl.Remove(ctx, id)
		if errors.Is(err, resource.ErrDeclined) {
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}
		if err != nil {
			return reported(err)
		}
		s.render(s.ctrl.Items())
		return nil

	default:
		return fmt.Errorf("%w: subcomando desconocido %q", ErrUsage, sub)
	}
}

// submit vuelca los campos en el formulario abierto y lo envía. Si falla, el
// formulario se descarta: en terminal no queda abierto entre comandos.
func submit[T any, P any](ctx context.Context, ctrl *resource.Controller[T, P], fields map[string]string) error {
	for name, value := range fields {
		if err := ctrl.SetField(name, value); err != nil {
			ctrl.CloseForm()
			return err
		}
	}
	if err := ctrl.Submit(ctx); err != nil {
		ctrl.CloseForm()
		return reported(err)
	}
	return nil
}

func findItem[T any, P any](ctrl *resource.Controller[T, P], id int64) (T, bool) {
	kind := ctrl.Kind()
	for _, it := range ctrl.Items() {
		if kind.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: se espera un único id", ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id inválido %q", ErrUsage, args[0])
	}
	return id, nil
}

// flagName nombre del flag de un campo de formulario.
func flagName(field string) string {
	if field == resource.FieldCategoryID {
		return "category"
	}
	return field
}

var fieldUsage = map[string]string{
	resource.FieldName:        "nombre",
	resource.FieldDescription: "descripción",
	resource.FieldPrice:       "precio (decimal, >= 0)",
	resource.FieldCategoryID:  "id de la categoría",
}

func fieldFlags(fs *pflag.FlagSet, fields []string) map[string]*string {
	out := make(map[string]*string, len(fields))
	for _, f := range fields {
		out[f] = fs.String(flagName(f), "", fieldUsage[f])
	}
	return out
}

// changedFields solo los campos cuyo flag se pasó explícitamente.
func changedFields(fs *pflag.FlagSet, values map[string]*string) map[string]string {
	out := make(map[string]string, len(values))
	for field, v := range values {
		if fs.Changed(flagName(field)) {
			out[field] = *v
		}
	}
	return out
}

func (a *App) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) renderCategories(items []entity.Category) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No categories yet. Create your first one!")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name, strconv.Itoa(len(c.Products))})
	}
	renderTable(a.out, []string{"ID", "NAME", "PRODUCTS"}, rows)
}

func (a *App) renderProducts(items []entity.Product) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products yet.")
		return
	}
	names := make(map[int64]string)
	for _, c := range a.lookup.Items() {
		names[c.ID] = c.Name
	}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		category, ok := names[p.CategoryID]
		if !ok || category == "" {
			category = "#" + strconv.FormatInt(p.CategoryID, 10)
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Price.StringFixed(2),
			category,
			strings.TrimSpace(p.Description),
		})
	}
	renderTable(a.out, []string{"ID", "NAME", "PRICE", "CATEGORY", "DESCRIPTION"}, rows)
}

package resource

// Mode estado del formulario modal.
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Form estado del formulario de un controller. Target solo está presente en ModeEdit.
type Form[T any] struct {
	Mode       Mode
	Target     *T
	Fields     Fields
	Submitting bool
}

func (f Form[T]) clone() Form[T] {
	out := f
	out.Fields = f.Fields.clone()
	if f.Target != nil {
		t := *f.Target
		out.Target = &t
	}
	return out
}

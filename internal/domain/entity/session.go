package entity

// Identity es la parte serializable de la sesión (clave "user" del almacenamiento).
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session identidad autenticada viva del cliente más su credencial (JWT opaco).
type Session struct {
	Identity
	Credential string `json:"-"`
}

// IsAdmin indica si la sesión tiene el rol ADMIN.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el JWT y la identidad mínima.
type LoginResponse struct {
	JWT      string `json:"jwt"`
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// SignupRequest entrada para registro; Role vacío o desconocido se trata como USER.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"`
}

// SignupResponse confirmación de creación (sin password).
type SignupResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

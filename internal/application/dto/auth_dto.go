package dto

// RegisterRequest alta de usuario (stub: valida y hashea, no persiste aún).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest inicio de sesión (stub: no hay verificación real de credenciales).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido por el stub.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

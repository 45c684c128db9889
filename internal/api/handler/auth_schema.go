package handler

// loginRequest carries a login attempt. Exactly one of cpf, email or
// username identifies the user; email takes precedence over cpf, which
// takes precedence over username, when more than one is supplied.
type loginRequest struct {
	CPF        string `json:"cpf,omitempty"      validate:"omitempty,cpf"`
	Email      string `json:"email,omitempty"    validate:"omitempty,email"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password"           validate:"required,senha"`
	RememberMe bool   `json:"rememberMe"`
}

package request

import "little-lemon/internal/usecase/commands"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Username: r.Username, Password: r.Password}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{Username: r.Username, Password: r.Password, Email: r.Email}
}

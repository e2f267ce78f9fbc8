package response

import (
	"little-lemon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Roles    []string  `json:"roles"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	res := UserResponse{Roles: []string{}}
	_ = copier.CopyWithOption(&res, v, copier.Option{IgnoreEmpty: true})
	if v.Email != nil {
		res.Email = *v.Email
	}
	return &res
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

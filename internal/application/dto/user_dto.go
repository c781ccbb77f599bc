package dto

// CreateUserRequest alta administrativa de usuarios: a diferencia del signup,
// el rol es obligatorio.
type CreateUserRequest struct {
	LoginID    string `json:"loginId" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// UpdateUserRequest actualización administrativa (incluye rol y estado).
type UpdateUserRequest struct {
	LoginID    *string `json:"loginId"`
	Email      *string `json:"email"`
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Status     *string `json:"status"`
	Phone      *string `json:"phone"`
}

// UserListQuery filtros del listado de usuarios.
type UserListQuery struct {
	PageQuery
	Search string `query:"search"`
	Role   string `query:"role"`
	Status string `query:"status"`
}

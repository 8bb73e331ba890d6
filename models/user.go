package models

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

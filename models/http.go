package models

// RegisterRequest is the body of POST /auth/register.
// Username, Password and Fullname are required.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	MenuID   int64 `json:"menu_id"`
	Quantity int64 `json:"quantity"`
}

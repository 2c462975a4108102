package models

// MessageResponse is the generic JSON body used for acknowledgements
// and for every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps list results as {"data": [...]}.
type DataResponse[T any] struct {
	Data []T `json:"data"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// OrderCreatedResponse is returned by a successful POST /orders.
type OrderCreatedResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// PingResponse reports database liveness together with the database clock.
type PingResponse struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

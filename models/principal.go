package models

// Principal is the identity a request acts on behalf of once its session
// token has been validated. Handlers receive it from the request context
// and trust it without re-checking persistence.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

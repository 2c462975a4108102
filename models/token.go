package models

import "time"

// Token is a freshly issued session token.
//
// SignedString holds the compact JWS serialization (header.payload.signature)
// that clients send back in the "Authorization: Bearer" header.
type Token struct {
	// SignedString is the compact serialized token.
	SignedString string `json:"token"`

	// ExpiresAt is the absolute expiry embedded in the token.
	ExpiresAt time.Time `json:"expires_at"`

	// Principal is the identity the token was issued for.
	Principal Principal `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

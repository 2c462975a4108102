// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/rs/zerolog"
)

// Customer is a registered account able to log in and place orders.
// It is the persistence-side view of a principal and carries the password
// digest, which is never serialized to JSON.
type Customer struct {
	// ID is the server-assigned identifier, also embedded in session tokens.
	ID int64 `json:"id"`

	// Username is unique across all customers.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the customer's password.
	// It must never leave the server.
	PasswordHash string `json:"-"`

	Fullname string `json:"fullname"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`

	CreatedAt time.Time `json:"created_at"`
}

// Principal returns the authenticated identity derived from the customer.
func (c Customer) Principal() Principal {
	return Principal{ID: c.ID, Username: c.Username}
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that
// customers can be attached to log events without leaking the digest.
func (c Customer) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("id", c.ID).
		Str("username", c.Username).
		Str("fullname", c.Fullname)
}

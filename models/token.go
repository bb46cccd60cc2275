package models

import "github.com/golang-jwt/jwt/v5"

// Token is a signed bearer token for the diary API.
//
// UserID is the diary owner parsed from the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// String returns the compact JWS form of the token.
func (t Token) String() string {
	return t.SignedString
}

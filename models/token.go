package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT presented by a downstream client and validated by the
// jwt plugin.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Consumer returns the "sub" claim, which identifies the API consumer the
// token was issued to.
func (t *Token) Consumer() (string, error) {
	consumer, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting consumer from token: %w", err)
	}
	if consumer == "" {
		return "", fmt.Errorf("token has an empty subject")
	}

	return consumer, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

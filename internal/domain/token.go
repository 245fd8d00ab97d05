package domain

import "errors"

// Token verification failures. Expired tokens simply force re-login; there is
// no refresh mechanism.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService combines issuing and verification, as implemented by the JWT
// adapter.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"

	"github.com/taskvault/taskvault/pkg/fault"
)

// TokenCodec issues and verifies compact bearer tokens. The same codec
// instance both signs and verifies with a shared symmetric secret.
type TokenCodec interface {
	// Issue creates a signed token for the account, expiring at now+TTL.
	Issue(accountID int64, now time.Time) (AuthToken, error)

	// Parse verifies the token signature and expiry against now and
	// returns the embedded account ID.
	Parse(token string, now time.Time) (int64, error)
}

// JWTCodec implements TokenCodec using HS256-signed JWTs. Issued tokens
// carry the account ID as subject and an absolute expiry. Tokens cannot be
// revoked: a password change does not invalidate previously issued tokens.
// This is an accepted limitation of the stateless design.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec creates a JWTCodec with the given signing secret and token
// lifetime.
func NewJWTCodec(secret string, ttl time.Duration) (*JWTCodec, error) {
	if secret == "" {
		return nil, oops.Code("TOKEN_CONFIG_INVALID").Errorf("signing secret is required")
	}
	if ttl <= 0 {
		return nil, oops.Code("TOKEN_CONFIG_INVALID").Errorf("token TTL must be positive, got %s", ttl)
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the account.
func (c *JWTCodec) Issue(accountID int64, now time.Time) (AuthToken, error) {
	// Random jti keeps two tokens for the same account distinct even when
	// issued within the same second.
	jti := make([]byte, 8)
	if _, err := rand.Read(jti); err != nil {
		return AuthToken{}, oops.Code("TOKEN_SIGN_FAILED").Wrap(err)
	}

	expiresAt := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        hex.EncodeToString(jti),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return AuthToken{}, oops.Code("TOKEN_SIGN_FAILED").
			With("account_id", accountID).
			Wrap(err)
	}

	return AuthToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Parse verifies the token and returns the embedded account ID. It fails
// when the signature does not verify, the payload is malformed, or now is
// at or past the embedded expiry. Only HS256 tokens are accepted.
func (c *JWTCodec) Parse(tokenString string, now time.Time) (int64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	var claims jwt.RegisteredClaims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return 0, oops.Code("TOKEN_INVALID").
			With("reason", err.Error()).
			Wrap(fault.ErrForbidden)
	}

	// The library treats exp as valid up to and including the instant
	// itself with zero leeway; enforce the stricter now >= exp rule here.
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return 0, oops.Code("TOKEN_EXPIRED").Wrap(fault.ErrForbidden)
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, oops.Code("TOKEN_INVALID").
			With("reason", "subject is not an account id").
			Wrap(fault.ErrForbidden)
	}

	return accountID, nil
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"institute/internal/domain/entity"
	"institute/internal/errors"
)

// Verification failure kinds. The auth middleware maps each to a different
// user-facing 401 message, so verifiers must keep them distinct.
var (
	// ErrTokenExpired indicates a structurally valid token whose expiry claim has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates a token with an invalid signature or structure.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims defines the identity claims embedded in the signed tokens.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the claim payload handed to the issuer: who the token is for.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// TokenPair bundles a freshly minted access/refresh token pair. ExpiresAt is
// the access token's expiry instant in epoch milliseconds, decoded back out of
// the minted token rather than recomputed.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// TokenService defines the interface for minting and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccess creates a short-lived access token for the given identity.
	IssueAccess(id Identity) (string, error)

	// IssueRefresh creates a longer-lived refresh token with identical claims.
	IssueRefresh(id Identity) (string, error)

	// IssuePair mints both tokens and reports the access token's expiry.
	IssuePair(id Identity) (*TokenPair, error)

	// Verify checks signature and expiry, returning the embedded claims.
	// Fails with ErrTokenExpired or ErrTokenMalformed.
	Verify(token string) (*Claims, error)

	// DecodeUnverified returns claims without checking the signature.
	// For inspection only; never use the result for authorization decisions.
	DecodeUnverified(token string) (*Claims, error)
}

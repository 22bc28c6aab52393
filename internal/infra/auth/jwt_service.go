// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"institute/config"
	"institute/internal/domain/service"
	"institute/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.JWT.Secret) < config.MinSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", config.MinSecretLength)
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
	}, nil
}

// IssueAccess creates a signed access token carrying the user's identity and role.
func (s *jwtService) IssueAccess(identity service.Identity) (string, error) {
	return s.sign(identity, s.accessTTL)
}

// IssueRefresh creates a signed refresh token for the same identity with a longer lifetime.
func (s *jwtService) IssueRefresh(identity service.Identity) (string, error) {
	return s.sign(identity, s.refreshTTL)
}

// IssuePair mints both tokens and reports the access token's expiry in epoch milliseconds.
func (s *jwtService) IssuePair(identity service.Identity) (*service.TokenPair, error) {
	accessToken, err := s.IssueAccess(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.IssueRefresh(identity)
	if err != nil {
		return nil, err
	}

	// Decode the minted access token so the reported expiry matches the
	// claim exactly rather than recomputing from the clock.
	claims, err := s.DecodeUnverified(accessToken)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    claims.ExpiresAt.UnixMilli(),
	}, nil
}

// Verify parses and validates a token, returning its claims.
// An expired token is reported as ErrTokenExpired; any other parse or
// signature failure is reported as ErrTokenMalformed.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, service.ErrTokenMalformed
	}
	if claims.UserID == uuid.Nil || !claims.Role.IsValid() {
		return nil, service.ErrTokenMalformed
	}

	return claims, nil
}

// DecodeUnverified extracts claims without checking the signature or expiry.
func (s *jwtService) DecodeUnverified(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, service.ErrTokenMalformed
	}
	if claims.ExpiresAt == nil {
		return nil, service.ErrTokenMalformed
	}

	return claims, nil
}

func (s *jwtService) sign(identity service.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

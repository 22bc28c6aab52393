package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute/config"
	"institute/internal/domain/entity"
	"institute/internal/domain/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T, accessTTL, refreshTTL time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.AccessTTL = accessTTL
	cfg.JWT.RefreshTTL = refreshTTL

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testIdentity() service.Identity {
	return service.Identity{
		UserID: uuid.New(),
		Email:  "student@example.com",
		Role:   entity.RoleStudent,
	}
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.JWT.Secret = "too-short"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 15*time.Minute, 7*24*time.Hour)
	id := testIdentity()

	token, err := svc.IssueAccess(id)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, claims.UserID)
	assert.Equal(t, id.Email, claims.Email)
	assert.Equal(t, id.Role, claims.Role)
}

func TestVerify_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, -time.Minute, 7*24*time.Hour)

	token, err := svc.IssueAccess(testIdentity())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.NotErrorIs(t, err, service.ErrTokenMalformed)
}

func TestVerify_MalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 15*time.Minute, 7*24*time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestVerify_WrongSignature(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 15*time.Minute, 7*24*time.Hour)

	other := &config.Config{}
	other.JWT.Secret = strings.Repeat("x", 32)
	other.JWT.AccessTTL = 15 * time.Minute
	other.JWT.RefreshTTL = 7 * 24 * time.Hour
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.IssueAccess(testIdentity())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestVerify_RejectsUnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 15*time.Minute, 7*24*time.Hour)

	// alg=none tokens must never validate, regardless of claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestIssuePair_ExpiryMatchesAccessClaim(t *testing.T) {
	t.Parallel()

	ttl := 15 * time.Minute
	svc := newTestService(t, ttl, 7*24*time.Hour)

	pair, err := svc.IssuePair(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.DecodeUnverified(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.ExpiresAt.UnixMilli(), pair.ExpiresAt)

	// Expiry lands roughly one access TTL from now.
	want := time.Now().Add(ttl).UnixMilli()
	assert.InDelta(t, want, pair.ExpiresAt, float64(5*time.Second/time.Millisecond))
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 15*time.Minute, 7*24*time.Hour)

	pair, err := svc.IssuePair(testIdentity())
	require.NoError(t, err)

	access, err := svc.DecodeUnverified(pair.AccessToken)
	require.NoError(t, err)
	refresh, err := svc.DecodeUnverified(pair.RefreshToken)
	require.NoError(t, err)

	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt.Time))
}

func TestDecodeUnverified_DoesNotValidateSignature(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, -time.Minute, 7*24*time.Hour)

	id := testIdentity()
	token, err := svc.IssueAccess(id)
	require.NoError(t, err)

	// Expired tokens still decode; only Verify enforces expiry.
	claims, err := svc.DecodeUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, claims.UserID)
}

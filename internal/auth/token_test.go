package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	identity := domain.Identity{ID: "4", Role: domain.RoleShowroomManager}

	token, expiresAt, err := tm.GenerateToken("sess-1", identity)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "4", claims.Subject)
	assert.Equal(t, domain.RoleShowroomManager, claims.Role)
}

func TestTokenManagerDefaultsTTL(t *testing.T) {
	assert.Equal(t, time.Hour, NewTokenManager("secret", 0).TTL())
}

func TestParseTokenRejects(t *testing.T) {
	tm := NewTokenManager("secret", 30)

	other, _, err := NewTokenManager("other", 30).GenerateToken("sess-1", domain.Identity{ID: "1"})
	require.NoError(t, err)
	_, err = tm.ParseToken(other)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		SessionID: "sess-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tm.ParseToken(signed)
	assert.Error(t, err)

	noSession := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err = noSession.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tm.ParseToken(signed)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: "sess-1"})
	signed, err = none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("correct horse", 4)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hashed, "correct horse"))
	assert.Error(t, ComparePassword(hashed, "wrong"))
	assert.Error(t, ComparePassword("", "correct horse"))
}

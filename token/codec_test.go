package token_test

import (
	"strings"
	"testing"
	"time"

	"food4u-api/models"
	"food4u-api/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-signing-key")

func TestCodecIssueAndParse(t *testing.T) {
	codec := token.NewCodec(secret, time.Hour)
	roles := []models.UserRole{models.RoleDriver, models.RoleRestaurant}

	signed, expiresAt, err := codec.Issue("acc-1", roles, models.RoleDriver)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := codec.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, models.RoleDriver, claims.ActiveRole)
}

func TestCodecRejects(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := token.NewCodec(secret, time.Hour).WithClock(func() time.Time { return now })
	signed, _, err := codec.Issue("acc-1", []models.UserRole{models.RoleDriver}, models.RoleDriver)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := codec.WithClock(func() time.Time { return now.Add(2 * time.Hour) })
		_, err := later.Parse(signed)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewCodec([]byte("other"), time.Hour).WithClock(func() time.Time { return now })
		_, err := other.Parse(signed)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(signed, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]
		_, err := codec.Parse(tampered)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := codec.Parse("not-a-token")
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := token.Claims{
			AccountID: "acc-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "food4u-api",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = codec.Parse(none)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})
}

package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	mockcore "github.com/mayankmishra1802/imagify/mocks/port/core"
)

func newIssuerAt(now time.Time, secret string, ttl time.Duration) *JWTIssuer {
	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(now).Maybe()
	return NewJWTIssuer(secret, ttl, timeProvider)
}

func TestJWTIssuer(t *testing.T) {
	now := time.Now()

	t.Run("issued token verifies to the same user id", func(t *testing.T) {
		issuer := newIssuerAt(now, "test-secret", time.Hour)

		tokenString, err := issuer.Issue(42)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		userID, err := issuer.Verify(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, uint64(42), userID)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		issuer := newIssuerAt(now, "test-secret", time.Hour)
		forger := newIssuerAt(now, "attacker-secret", time.Hour)

		tokenString, err := forger.Issue(42)
		assert.NoError(t, err)

		_, err = issuer.Verify(tokenString)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		past := now.Add(-2 * time.Hour)
		issuer := newIssuerAt(past, "test-secret", time.Hour)

		tokenString, err := issuer.Issue(42)
		assert.NoError(t, err)

		_, err = issuer.Verify(tokenString)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		issuer := newIssuerAt(now, "test-secret", time.Hour)

		_, err := issuer.Verify("not-a-jwt")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

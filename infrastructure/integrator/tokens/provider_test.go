package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)
	return signed
}

func TestStaticProvider_Token(t *testing.T) {
	t.Run("Token configurado é devolvido como está", func(t *testing.T) {
		provider := NewStaticProvider("utmify", "abc123")

		token, err := provider.Token()

		assert.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("Prefixo Bearer é removido", func(t *testing.T) {
		provider := NewStaticProvider("utmify", "Bearer abc123")

		token, err := provider.Token()

		assert.NoError(t, err)
		assert.Equal(t, "abc123", token)
	})

	t.Run("Token ausente devolve ErrTokenUnavailable", func(t *testing.T) {
		provider := NewStaticProvider("vturb", "   ")

		_, err := provider.Token()

		assert.ErrorIs(t, err, ErrTokenUnavailable)
	})
}

func TestStaticProvider_ExpiresAt(t *testing.T) {
	t.Run("JWT com exp devolve a expiração", func(t *testing.T) {
		expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		provider := NewStaticProvider("utmify", signedToken(t, expiresAt))

		result := provider.ExpiresAt()

		require.NotNil(t, result)
		assert.True(t, expiresAt.Equal(*result))
	})

	t.Run("Token opaco devolve nil", func(t *testing.T) {
		provider := NewStaticProvider("utmify", "nao-sou-um-jwt")

		assert.Nil(t, provider.ExpiresAt())
	})

	t.Run("Token vazio devolve nil", func(t *testing.T) {
		provider := NewStaticProvider("utmify", "")

		assert.Nil(t, provider.ExpiresAt())
	})
}

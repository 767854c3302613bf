package auth

import (
	"testing"

	"depot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptCodeHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptCodeHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	hash, err := hasher.Hash("482913")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "482913", hash)

	assert.True(t, hasher.Check("482913", hash))
	assert.False(t, hasher.Check("000000", hash))
}

func TestBcryptCodeHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptCodeHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	first, err := hasher.Hash("482913")
	require.NoError(t, err)
	second, err := hasher.Hash("482913")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("482913", first))
	assert.True(t, hasher.Check("482913", second))
}

func TestNewBcryptCodeHasher_DefaultsOnMissingConfig(t *testing.T) {
	// Out-of-range and missing cost both fall back to the bcrypt default.
	hasher := NewBcryptCodeHasher(nil)
	hash, err := hasher.Hash("482913")
	require.NoError(t, err)
	assert.True(t, hasher.Check("482913", hash))
}

func TestBcryptCodeHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptCodeHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	assert.False(t, hasher.Check("482913", "not-a-bcrypt-hash"))
}

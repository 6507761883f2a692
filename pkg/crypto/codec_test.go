package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/apperr"
)

// 32-byte key and 16-byte IV, hex encoded.
const (
	testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testIV  = "0f0e0d0c0b0a09080706050403020100"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testKey, testIV)
	require.NoError(t, err)
	return c
}

func TestNewCodec_MissingKeyMaterial(t *testing.T) {
	_, err := NewCodec("", testIV)
	require.Error(t, err)
	assert.Equal(t, apperr.Configuration, apperr.KindOf(err))

	_, err = NewCodec(testKey, "")
	require.Error(t, err)
	assert.Equal(t, apperr.Configuration, apperr.KindOf(err))
}

func TestNewCodec_BadKeyMaterial(t *testing.T) {
	// not hex
	_, err := NewCodec("zz", testIV)
	assert.Equal(t, apperr.Configuration, apperr.KindOf(err))

	// wrong lengths
	_, err = NewCodec("00ff", testIV)
	assert.Equal(t, apperr.Configuration, apperr.KindOf(err))

	_, err = NewCodec(testKey, "00ff")
	assert.Equal(t, apperr.Configuration, apperr.KindOf(err))
}

func TestEncryptEmail_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	for _, email := range []string{
		"john@x.com",
		"a@b.c",
		"someone.with.a.much.longer.address@example-domain.com",
	} {
		enc, err := c.EncryptEmail(email)
		require.NoError(t, err)
		assert.NotEqual(t, email, enc)

		dec, err := c.DecryptEmail(enc)
		require.NoError(t, err)
		assert.Equal(t, email, dec)
	}
}

func TestEncryptEmail_Deterministic(t *testing.T) {
	c := newTestCodec(t)

	first, err := c.EncryptEmail("john@x.com")
	require.NoError(t, err)

	second, err := c.EncryptEmail("john@x.com")
	require.NoError(t, err)

	// fixed key+IV must produce identical ciphertext, the encrypted
	// column is used for equality lookup
	assert.Equal(t, first, second)

	other, err := c.EncryptEmail("jane@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestDecryptEmail_Malformed(t *testing.T) {
	c := newTestCodec(t)

	// not hex
	_, err := c.DecryptEmail("not-hex!")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	// hex but not a whole number of blocks
	_, err = c.DecryptEmail("00ff")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	// empty
	_, err = c.DecryptEmail("")
	require.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123", 4)
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret123", 4)
	require.NoError(t, err)

	second, err := HashPassword("secret123", 4)
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret123", first))
	assert.True(t, CheckPassword("secret123", second))
}

func TestHashPassword_OutOfRangeCost(t *testing.T) {
	// falls back to the default cost instead of failing
	hash, err := HashPassword("secret123", 99)
	require.NoError(t, err)
	assert.True(t, CheckPassword("secret123", hash))
}

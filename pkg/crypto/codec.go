package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront/pkg/apperr"
)

// Codec encrypts and decrypts email addresses with AES-256-CBC under a
// fixed key and IV. The fixed IV makes the cipher deterministic: the same
// plaintext always yields the same ciphertext, so the encrypted column can
// be used for equality lookup at login. Key material is injected here once
// at construction instead of being read from ambient process state.
type Codec struct {
	key []byte
	iv  []byte
}

// NewCodec builds a codec from hex-encoded key and IV. The key must decode
// to 32 bytes and the IV to aes.BlockSize (16) bytes.
func NewCodec(hexKey, hexIV string) (*Codec, error) {
	if hexKey == "" || hexIV == "" {
		return nil, apperr.New(apperr.Configuration, "encryption key or IV is not configured")
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, apperr.Wrap(apperr.Configuration, "encryption key is not valid hex", err)
	}
	if len(key) != 32 {
		return nil, apperr.New(apperr.Configuration,
			fmt.Sprintf("encryption key must be 32 bytes, got %d", len(key)))
	}

	iv, err := hex.DecodeString(hexIV)
	if err != nil {
		return nil, apperr.Wrap(apperr.Configuration, "encryption IV is not valid hex", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, apperr.New(apperr.Configuration,
			fmt.Sprintf("encryption IV must be %d bytes, got %d", aes.BlockSize, len(iv)))
	}

	return &Codec{key: key, iv: iv}, nil
}

// EncryptEmail returns the hex-encoded AES-256-CBC ciphertext of email.
func (c *Codec) EncryptEmail(email string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", apperr.Wrap(apperr.Configuration, "invalid encryption key", err)
	}

	plaintext := pkcs7Pad([]byte(email), aes.BlockSize)
	ciphertext := make([]byte, len(plaintext))

	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(ciphertext, plaintext)

	return hex.EncodeToString(ciphertext), nil
}

// DecryptEmail inverts EncryptEmail.
func (c *Codec) DecryptEmail(encrypted string) (string, error) {
	ciphertext, err := hex.DecodeString(encrypted)
	if err != nil {
		return "", apperr.Wrap(apperr.Validation, "encrypted email is not valid hex", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", apperr.New(apperr.Validation, "encrypted email has invalid length")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", apperr.Wrap(apperr.Configuration, "invalid encryption key", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, c.iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", apperr.Wrap(apperr.Validation, "encrypted email is malformed", err)
	}

	return string(unpadded), nil
}

// HashPassword hashes plaintext with bcrypt at the given cost. A cost
// outside bcrypt's range falls back to the library default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", padding)
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}

	return data[:len(data)-padding], nil
}

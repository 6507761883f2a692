package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/data/entity"
	"storefront/internal/dto/request"
	"storefront/pkg/apperr"
	"storefront/pkg/crypto"
	"storefront/pkg/utils"
)

const (
	testHexKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testHexIV  = "0f0e0d0c0b0a09080706050403020100"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *crypto.Codec) {
	t.Helper()

	codec, err := crypto.NewCodec(testHexKey, testHexIV)
	require.NoError(t, err)

	users := newFakeUserRepo()
	config := &utils.Config{Crypto: utils.CryptoConfig{BcryptCost: bcrypt.MinCost}}
	svc := NewAuthService(users, codec, config, zap.NewNop())
	return svc, users, codec
}

func TestSignupThenLogin(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, &request.SignupRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
		Role:     "customer",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.Equal(t, "john@example.com", created.Email)
	assert.Equal(t, entity.RoleCustomer, created.Role)
	assert.Equal(t, 1, users.writes)

	logged, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "john@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
	assert.Equal(t, entity.RoleCustomer, logged.Role)
	assert.Equal(t, "john@example.com", logged.Email)
}

func TestSignupStoresNoPlaintext(t *testing.T) {
	svc, users, codec := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "hunter2secret",
		Role:     "vendor",
	})
	require.NoError(t, err)

	encrypted, err := codec.EncryptEmail("jane@example.com")
	require.NoError(t, err)

	stored, ok := users.byEmail[encrypted]
	require.True(t, ok, "user must be keyed by ciphertext, not plaintext")
	assert.NotEqual(t, "jane@example.com", stored.Email)
	assert.NotEqual(t, "hunter2secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2secret")))
}

func TestSignupMissingFields(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	cases := []request.SignupRequest{
		{Email: "a@b.com", Password: "secret123", Role: "customer"},
		{Name: "A", Password: "secret123", Role: "customer"},
		{Name: "A", Email: "a@b.com", Role: "customer"},
		{Name: "A", Email: "a@b.com", Password: "secret123"},
	}
	for _, req := range cases {
		_, err := svc.Signup(context.Background(), &req)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
	assert.Zero(t, users.writes, "rejected signups must not touch the store")
}

func TestSignupInvalidRole(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Name:     "A",
		Email:    "a@b.com",
		Password: "secret123",
		Role:     "admin",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Zero(t, users.writes)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	req := &request.SignupRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
		Role:     "customer",
	}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "User already registered", apperr.MessageOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &request.SignupRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
		Role:     "customer",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{
		Email:    "john@example.com",
		Password: "not-the-password",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Auth, apperr.KindOf(err))
	assert.Equal(t, "Incorrect password", apperr.MessageOf(err))
}

func TestLoginMissingCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "john@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestSignupStoreFailure(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	users.failAll = true

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
		Role:     "customer",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Store, apperr.KindOf(err))
	assert.Equal(t, "Internal server error", apperr.MessageOf(err))
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/apperr"
	"storefront/pkg/crypto"
	"storefront/pkg/utils"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
}

type authService struct {
	users  repository.UserRepository
	codec  *crypto.Codec
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	codec *crypto.Codec,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		codec:  codec,
		config: config,
		log:    log,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	// 1. All four fields must be present. Checked before anything touches
	// the store so a rejected signup performs zero writes.
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		s.log.Warn("Signup with missing fields")
		return nil, apperr.New(apperr.Validation, "Missing required fields")
	}

	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, apperr.New(apperr.Validation, "Role must be customer or vendor")
	}

	// 2. Duplicate check by encrypted email
	encryptedEmail, err := s.codec.EncryptEmail(req.Email)
	if err != nil {
		s.log.Error("Failed to encrypt email", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Error registering user", err)
	}

	existing, err := s.users.FindByEncryptedEmail(ctx, encryptedEmail)
	if err != nil {
		s.log.Error("Failed to check existing email", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Error registering user", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "User already registered")
	}

	// 3. Hash, insert, return without the hash
	passwordHash, err := crypto.HashPassword(req.Password, s.config.Crypto.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Error registering user", err)
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        encryptedEmail,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique constraint is the backstop for two concurrent signups
		// racing past the duplicate check above.
		if err == repository.ErrDuplicateEmail {
			return nil, apperr.New(apperr.Conflict, "User already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Error registering user", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return response.UserToResponse(user, req.Email), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	// 1. Both credentials must be present
	if req.Email == "" || req.Password == "" {
		s.log.Warn("Login with missing credentials")
		return nil, apperr.New(apperr.Validation, "Email and password are required")
	}

	// 2. Equality lookup by deterministic ciphertext; exactly one read on
	// the not-found path
	encryptedEmail, err := s.codec.EncryptEmail(req.Email)
	if err != nil {
		s.log.Error("Failed to encrypt email", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Error logging in", err)
	}

	user, err := s.users.FindByEncryptedEmail(ctx, encryptedEmail)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Error logging in", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}

	// 3. Password check
	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		s.log.Warn("Incorrect password", zap.Int64("user_id", user.ID))
		return nil, apperr.New(apperr.Auth, "Incorrect password")
	}

	// 4. Decrypt the stored email for the response payload
	plainEmail, err := s.codec.DecryptEmail(user.Email)
	if err != nil {
		s.log.Error("Failed to decrypt stored email",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return nil, apperr.Wrap(apperr.Store, "Error logging in", err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return response.UserToResponse(user, plainEmail), nil
}

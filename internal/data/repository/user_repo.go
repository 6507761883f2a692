package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/pkg/database"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEncryptedEmail(ctx context.Context, encryptedEmail string) (*entity.User, error)
	FindRoleByID(ctx context.Context, id int64) (entity.UserRole, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// Create inserts a new user row and fills in the generated id and
// created_at. A unique-constraint hit on emailid maps to ErrDuplicateEmail.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, emailid, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}

		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("name", user.Name),
		)
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, name, emailid, password, role, created_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

// FindByEncryptedEmail looks the user up by the deterministic ciphertext of
// the email, so equality search works without storing plaintext.
func (ur *userRepository) FindByEncryptedEmail(ctx context.Context, encryptedEmail string) (*entity.User, error) {
	query := `
		SELECT id, name, emailid, password, role, created_at
		FROM users
		WHERE emailid = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, encryptedEmail).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &user, nil
}

// FindRoleByID is the narrow lookup used by order-authorization checks.
func (ur *userRepository) FindRoleByID(ctx context.Context, id int64) (entity.UserRole, error) {
	query := `SELECT role FROM users WHERE id = $1`

	var role entity.UserRole
	err := ur.db.QueryRow(ctx, query, id).Scan(&role)

	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		ur.log.Error("Failed to find user role",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return "", fmt.Errorf("find role for user %d: %w", id, err)
	}

	return role, nil
}

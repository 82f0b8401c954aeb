package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with UserID and CreatedAt set.
// A duplicate login is reported as [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if r.db.constraint(err) == UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByLogin returns the user with the given login or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByLoginQuery(r.db.builder(), login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func scanUser(row scanner) (models.User, error) {
	var (
		user models.User
		role string
	)
	if err := row.Scan(&user.UserID, &user.Login, &user.Name, &user.PasswordHash, &role, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)
	return user, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor of password hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The plain password is replaced with its bcrypt hash before persistence and
// is never returned. An empty role defaults to [models.RoleAgent].
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrInvalidRole if Role is not a known role.
//   - A wrapped storage error (e.g. store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if user.Role == "" {
		user.Role = models.RoleAgent
	}
	if !user.Role.Valid() {
		log.Error().Str("login", user.Login).Str("role", string(user.Role)).Msg("invalid role provided")
		return models.User{}, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by login and password.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped store.ErrNoUserWasFound for an unknown login.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the user's ID and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other validation failure
// (signature, issuer, malformed, unknown role) yields
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

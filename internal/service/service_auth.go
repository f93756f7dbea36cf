package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pamorimsa/project1-cs50w/internal/config"
	"github.com/pamorimsa/project1-cs50w/internal/logger"
	"github.com/pamorimsa/project1-cs50w/internal/store"
	"github.com/pamorimsa/project1-cs50w/internal/utils"
	"github.com/pamorimsa/project1-cs50w/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// signKey is the HMAC secret used to sign and verify session tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued session token.
	issuer string

	// duration controls how long a newly issued session token remains valid.
	duration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Session, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		signKey:        cfg.SignKey,
		issuer:         cfg.Issuer,
		duration:       cfg.Duration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// Uniqueness under case-insensitive comparison is enforced by the database,
// so a lost race against a concurrent registration of the same name still
// surfaces as [store.ErrUsernameTaken].
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It validates that both username and password are non-empty, looks up the
// account by username (case-insensitive), and verifies the submitted
// password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateSession issues a signed session token for the given user.
//
// The token is signed with the configured signKey, carries the configured
// issuer as the "iss" claim, and expires after the configured duration.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.issuer, user.UserID, a.duration, a.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return token, nil
}

// ParseSession validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrSessionExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.signKey, a.issuer)
	if err != nil {
		return models.Token{}, ErrSessionExpiredOrInvalid
	}

	return token, nil
}

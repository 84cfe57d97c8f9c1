package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/masterplan/backend/domain"
	"github.com/masterplan/backend/pkg/clock"
	"github.com/masterplan/backend/repository"
)

// Session state machine. Loading exists only between process start and the
// first session lookup; the API reports authenticated or anonymous.
const (
	StateLoading       = "loading"
	StateAuthenticated = "authenticated"
	StateAnonymous     = "anonymous"
)

// Config controls token issuance and the simulated identity provider.
type Config struct {
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration
	// Latency is the artificial delay applied to login, register and
	// profile updates, standing in for the remote identity provider.
	Latency time.Duration
}

// UseCase simulates an identity provider: credential checks are syntactic,
// the latency is artificial, and the "account" is the persisted session user.
type UseCase struct {
	users  repository.UserRepository
	clock  clock.Clock
	logger *zap.Logger
	cfg    Config
}

func New(users repository.UserRepository, clk clock.Clock, logger *zap.Logger, cfg Config) *UseCase {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &UseCase{
		users:  users,
		clock:  clk,
		logger: logger,
		cfg:    cfg,
	}
}

// Session is an issued login: the bearer token plus the session user.
type Session struct {
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// State reports the current session for a bearer.
type State struct {
	Status string       `json:"status"`
	User   *domain.User `json:"user,omitempty"`
}

// Login validates the credentials against the simulated provider's rules
// (email must contain "@", password longer than five characters), persists
// the session user and issues a token.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	uc.clock.Sleep(ctx, uc.cfg.Latency)

	if !validCredentials(email, password) {
		return nil, domain.ErrInvalidCredentials
	}

	userID := deriveUserID(email)
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		user = profileTemplate(userID, email)
	}
	user.Email = email

	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user logged in", zap.String("user_id", user.ID))
	return uc.issueSession(user)
}

// Register validates the registration fields with the same rules plus a
// non-empty name, then behaves like Login for a fresh account.
func (uc *UseCase) Register(ctx context.Context, name, email, password string) (*Session, error) {
	uc.clock.Sleep(ctx, uc.cfg.Latency)

	if name == "" || !validCredentials(email, password) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid registration data")
	}

	user := profileTemplate(deriveUserID(email), email)
	user.Name = name

	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return uc.issueSession(user)
}

// Logout clears the persisted session user. Always succeeds; the simulated
// provider's account is untouched.
func (uc *UseCase) Logout(ctx context.Context, userID string) error {
	if err := uc.users.Delete(ctx, userID); err != nil {
		return err
	}
	uc.logger.Info("user logged out", zap.String("user_id", userID))
	return nil
}

// CurrentState restores the session for the bearer: authenticated with the
// persisted user, or anonymous.
func (uc *UseCase) CurrentState(ctx context.Context, userID string) (*State, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return &State{Status: StateAnonymous}, nil
		}
		return nil, err
	}
	return &State{Status: StateAuthenticated, User: user}, nil
}

// GetProfile returns the session user.
func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// UpdateProfile merges the partial edit into the session user and persists
// it. Requires an authenticated session; an anonymous caller gets
// ErrUserNotFound.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	uc.clock.Sleep(ctx, uc.cfg.Latency)

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Apply(update)
	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UseCase) issueSession(user *domain.User) (*Session, error) {
	now := uc.clock.Now()
	expires := now.Add(uc.cfg.TokenTTL)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iss":     uc.cfg.JWTIssuer,
		"iat":     now.Unix(),
		"exp":     expires.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "token signing failed", err)
	}

	return &Session{
		Token:     signed,
		User:      *user,
		ExpiresAt: expires,
	}, nil
}

func validCredentials(email, password string) bool {
	return strings.Contains(email, "@") && len(password) > 5
}

// deriveUserID maps an email to a stable id so repeat logins resolve to the
// same session slot.
func deriveUserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email))).String()
}

// profileTemplate is the simulated provider's canned profile, completed with
// the caller's email.
func profileTemplate(id, email string) *domain.User {
	return &domain.User{
		ID:             id,
		Name:           "Alex Johnson",
		Email:          email,
		ProfilePicture: "https://i.pravatar.cc/150?img=33",
		Bio:            "Computer Science student trying to stay productive!",
		Theme:          "light",
	}
}

package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/identity"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
)

// credentialStore is satisfied by repository.CredentialRepository
type credentialStore interface {
	Create(ctx context.Context, c *model.Credential) error
	GetByEmail(ctx context.Context, email string) (*model.Credential, error)
	Delete(ctx context.Context, id string) error
	MarkVerified(ctx context.Context, email string, at time.Time) error
}

// Options tunes the gateway
type Options struct {
	BcryptCost               int
	RequireEmailVerification bool
}

// Gateway is the built-in identity provider: bcrypt credentials in PostgreSQL,
// HS256 session tokens, and a redis session list for revocation
type Gateway struct {
	credentials  credentialStore
	tokens       *TokenService
	sessions     *SessionStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	options      Options
	dummyHash    []byte
}

var _ identityport.Gateway = (*Gateway)(nil)

// NewGateway creates a Gateway
func NewGateway(
	credentials credentialStore,
	tokens *TokenService,
	sessions *SessionStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	options Options,
) (*Gateway, error) {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	if options.BcryptCost < bcrypt.MinCost || options.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid bcrypt cost %d", options.BcryptCost)
	}

	// compared against when the email is unknown so both paths cost the same
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &Gateway{
		credentials:  credentials,
		tokens:       tokens,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
		options:      options,
		dummyHash:    dummy,
	}, nil
}

// Register creates an account with a bcrypt password hash
func (g *Gateway) Register(ctx context.Context, email, password string) (entity.Principal, error) {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return entity.Principal{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.options.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return entity.Principal{}, errs.ErrInvalidPassword
		}
		return entity.Principal{}, fmt.Errorf("hash password: %w", err)
	}

	now := g.timeProvider.Now()
	credential := &model.Credential{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := g.credentials.Create(ctx, credential); err != nil {
		return entity.Principal{}, err
	}

	return entity.Principal{UserID: credential.ID, Email: email}, nil
}

// Authenticate checks the password and opens a session
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (*identityport.Session, error) {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	credential, err := g.credentials.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(g.dummyHash, []byte(password))
		return nil, errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	if g.options.RequireEmailVerification && credential.EmailVerifiedAt == nil {
		return nil, errs.ErrEmailNotVerified
	}

	sessionID := uuid.NewString()
	token, err := g.tokens.Issue(credential.ID, credential.Email, sessionID)
	if err != nil {
		return nil, err
	}
	if err := g.sessions.Save(ctx, credential.ID, sessionID, g.tokens.TTL()); err != nil {
		return nil, err
	}

	g.logger.Debug("Session opened", map[string]any{
		"user_id":    credential.ID,
		"session_id": sessionID,
	})

	return &identityport.Session{
		Principal: entity.Principal{UserID: credential.ID, Email: credential.Email, SessionID: sessionID},
		Token:     token,
		ExpiresIn: int64(g.tokens.TTL().Seconds()),
	}, nil
}

// Resolve verifies the token and that its session has not been revoked
func (g *Gateway) Resolve(ctx context.Context, token string) (entity.Principal, error) {
	claims, err := g.tokens.Parse(token)
	if err != nil {
		return entity.Principal{}, err
	}

	live, err := g.sessions.Exists(ctx, claims.Subject, claims.ID)
	if err != nil {
		return entity.Principal{}, err
	}
	if !live {
		return entity.Principal{}, errs.ErrUnauthenticated
	}

	return entity.Principal{UserID: claims.Subject, Email: claims.Email, SessionID: claims.ID}, nil
}

// Revoke ends the principal's session
func (g *Gateway) Revoke(ctx context.Context, principal entity.Principal) error {
	if principal.UserID == "" || principal.SessionID == "" {
		return nil
	}
	return g.sessions.Delete(ctx, principal.UserID, principal.SessionID)
}

// Delete removes the account and all of its sessions
func (g *Gateway) Delete(ctx context.Context, userID string) error {
	if err := g.sessions.DeleteAll(ctx, userID); err != nil {
		g.logger.Warn("Failed to revoke sessions of deleted account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return g.credentials.Delete(ctx, userID)
}

// MarkEmailVerified flags the account as verified
func (g *Gateway) MarkEmailVerified(ctx context.Context, email string) error {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}
	return g.credentials.MarkVerified(ctx, email, g.timeProvider.Now())
}

package verification

import (
	"context"
	"errors"
	"fmt"
	"html"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/identity"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/notification"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// Config controls code issuance
type Config struct {
	TTL         coreport.Duration
	MaxAttempts int
	Digits      int
}

// DefaultConfig returns a 6-digit code valid for ten minutes with five attempts
func DefaultConfig() Config {
	return Config{
		TTL:         10 * coreport.Minute,
		MaxAttempts: 5,
		Digits:      6,
	}
}

// Service issues and verifies email OTP codes
type Service struct {
	otps         persistence.OTPRepository
	codes        coreport.CodeGenerator
	mailer       notification.Mailer
	gateway      identity.Gateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.VerificationUseCase = (*Service)(nil)

// NewService creates a new verification service
func NewService(
	otps persistence.OTPRepository,
	codes coreport.CodeGenerator,
	mailer notification.Mailer,
	gateway identity.Gateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	defaults := DefaultConfig()
	if config.TTL <= 0 {
		config.TTL = defaults.TTL
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.Digits <= 0 {
		config.Digits = defaults.Digits
	}

	return &Service{
		otps:         otps,
		codes:        codes,
		mailer:       mailer,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// SendVerificationEmail replaces any outstanding code for email with a new one and mails it
func (s *Service) SendVerificationEmail(ctx context.Context, email string) error {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	// Expired rows are purged here instead of by a background job
	if purged, err := s.otps.DeleteExpired(ctx, s.timeProvider.Now()); err != nil {
		s.logger.Warn("Failed to purge expired verification codes", map[string]any{
			"error": err.Error(),
		})
	} else if purged > 0 {
		s.logger.Debug("Purged expired verification codes", map[string]any{
			"count": purged,
		})
	}

	if err := s.otps.DeleteByEmail(ctx, normalized); err != nil {
		return err
	}

	code, err := s.codes.NumericCode(s.config.Digits)
	if err != nil {
		return fmt.Errorf("%w: generate verification code: %v", errs.ErrInternalServer, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: hash verification code: %v", errs.ErrInternalServer, err)
	}

	otp := entity.NewOTP(normalized, string(hash), s.config.TTL, s.timeProvider)
	if err := s.otps.Create(ctx, otp); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, verificationEmail(normalized, code, s.config.TTL)); err != nil {
		s.logger.Error("Failed to send verification email", map[string]any{
			"email": normalized,
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Verification code sent", map[string]any{
		"email":      normalized,
		"expires_at": otp.ExpiresAt,
	})

	return nil
}

// VerifyOTP checks code against the latest one issued for email.
// A matching code is consumed and the account is marked verified.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}
	if code == "" {
		return errs.ErrOTPInvalid
	}

	otp, err := s.otps.GetLatestByEmail(ctx, normalized)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return errs.ErrOTPInvalid
		}
		return err
	}

	if !otp.IsValidAt(s.timeProvider.Now()) {
		if _, err := s.otps.Delete(ctx, otp.ID); err != nil {
			s.logger.Warn("Failed to delete expired verification code", map[string]any{
				"otp_id": otp.ID,
				"error":  err.Error(),
			})
		}
		return errs.ErrOTPExpired
	}

	// The attempt is reserved before the compare so a burst of parallel
	// guesses is still bounded by MaxAttempts.
	attempts, err := s.otps.IncrementAttempts(ctx, otp.ID, s.config.MaxAttempts)
	if err != nil {
		if errs.IsNotFoundError(err) {
			s.discard(ctx, otp)
			return errs.ErrOTPInvalid
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("%w: compare verification code: %v", errs.ErrInternalServer, err)
		}
		if attempts >= s.config.MaxAttempts {
			s.discard(ctx, otp)
			s.logger.Warn("Verification code discarded after too many attempts", map[string]any{
				"email":    otp.Email,
				"attempts": attempts,
			})
		}
		return errs.ErrOTPInvalid
	}

	// Only the request that removes the row may verify the account
	removed, err := s.otps.Delete(ctx, otp.ID)
	if err != nil {
		return err
	}
	if !removed {
		return errs.ErrOTPInvalid
	}

	if err := s.gateway.MarkEmailVerified(ctx, normalized); err != nil {
		return err
	}

	s.logger.Info("Email verified", map[string]any{
		"email": normalized,
	})

	return nil
}

func (s *Service) discard(ctx context.Context, otp *entity.OTP) {
	if _, err := s.otps.Delete(ctx, otp.ID); err != nil {
		s.logger.Warn("Failed to discard verification code", map[string]any{
			"otp_id": otp.ID,
			"error":  err.Error(),
		})
	}
}

func verificationEmail(to, code string, ttl coreport.Duration) notification.Email {
	minutes := int(ttl.Std().Minutes())
	return notification.Email{
		To:      to,
		Subject: "Your verification code",
		HTML: fmt.Sprintf(
			"<p>Your verification code is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>",
			html.EscapeString(code), minutes,
		),
	}
}

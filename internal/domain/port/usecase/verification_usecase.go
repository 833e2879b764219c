package usecase

import "context"

// VerificationUseCase issues and checks one-time email verification codes
type VerificationUseCase interface {
	SendVerificationEmail(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
}

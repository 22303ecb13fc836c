package ports

import "context"

// LoginResult is returned on successful credential authentication.
type LoginResult struct {
	Token        string
	RefreshToken string
	Type         string
}

// RefreshResult is returned on successful refresh-token redemption. The
// RefreshToken field holds the rotated id replacing the one presented.
type RefreshResult struct {
	Token        string
	RefreshToken string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshTokenID string) (*RefreshResult, error)
}

// LoginLimiter throttles repeated failed login attempts per email.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

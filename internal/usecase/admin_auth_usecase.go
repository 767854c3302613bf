package usecase

import "context"

// LoginOutput returns the access token after a successful code exchange.
type LoginOutput struct {
	AccessToken string        `json:"access_token"`
	User        *AdminSummary `json:"user"`
}

// AdminAuthUsecase is the credential issuer for passwordless admin login.
// Issuing a code always invalidates outstanding codes for the same
// (email, purpose) pair first.
type AdminAuthUsecase interface {
	// IssueLoginCode issues and dispatches a fresh one-time login code for a
	// known admin email.
	IssueLoginCode(ctx context.Context, email string) error

	// VerifyLoginCode exchanges (email, code) for an access token. Codes are
	// single-use and expiry-checked.
	VerifyLoginCode(ctx context.Context, email, code string) (*LoginOutput, error)
}

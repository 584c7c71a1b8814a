package auth

import "context"

// Provider checks the device token guarding the single-user API.
type Provider interface {
	ValidateTokenLocal(token string) error
	ValidateTokenRemote(ctx context.Context, token string) error
}

package auth

import (
	"context"
	"errors"

	"github.com/Oussamaberchi/Quickkt/internal"
)

type LocalAuthProvider struct {
	Token  string
	logger internal.Logger
}

func NewLocalAuthProvider(token string, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{Token: token, logger: logger}
}

func (a *LocalAuthProvider) ValidateTokenLocal(token string) error {
	if token == a.Token {
		return nil
	}
	a.logger.Warnf("invalid token: %s", token)
	return errors.New("invalid token")
}

func (a *LocalAuthProvider) ValidateTokenRemote(ctx context.Context, token string) error {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalAuthProvider")
	return errors.New("not implemented in LocalAuthProvider")
}

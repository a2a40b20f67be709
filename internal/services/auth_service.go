package services

import (
	"context"
	"errors"

	apperrors "theark/internal/errors"
	"theark/internal/logger"
	"theark/internal/session"
)

// Audit actions recorded by the auth service.
const (
	ActionLogin       = "LOGIN"
	ActionLoginFailed = "LOGIN_FAILED"
	ActionLogout      = "LOGOUT"
)

// authService handles login, token verification and logout.
type authService struct {
	authority    *session.Authority
	auditService AuditServicer
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(authority *session.Authority, auditService AuditServicer) AuthServicer {
	return &authService{authority: authority, auditService: auditService}
}

// Login checks the credentials and issues a session token.
func (s *authService) Login(_ context.Context, login, password, ipAddress string) (*session.Token, error) {
	if login == "" || password == "" {
		return nil, apperrors.ErrEmptyCredentials
	}

	token, err := s.authority.Authenticate(login, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.Named("auth").Warnw("login rejected", "login", login, "ip", ipAddress)
			s.auditService.Log(login, ActionLoginFailed, "session", "", ipAddress, nil)
		}
		return nil, err
	}

	s.auditService.Log(login, ActionLogin, "session", token.ID, ipAddress, nil)
	return token, nil
}

// Verify returns the claims of a valid, unrevoked token.
func (s *authService) Verify(ctx context.Context, token string) (*session.Claims, error) {
	return s.authority.Verify(ctx, token)
}

// Logout revokes token when server-side revocation is enabled. An absent or
// already invalid token is not an error.
func (s *authService) Logout(ctx context.Context, token, ipAddress string) error {
	if token == "" {
		return nil
	}

	claims, err := s.authority.Verify(ctx, token)
	if err != nil {
		return nil
	}

	if err := s.authority.Revoke(ctx, token); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.auditService.Log(claims.Login, ActionLogout, "session", claims.ID, ipAddress,
		map[string]interface{}{"revoked": s.authority.RevocationEnabled()})
	return nil
}

// Package session issues and verifies the signed session token that guards
// the dashboard. Tokens are HS256 JWTs signed with one process-wide secret
// and valid for seven days.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "theark/internal/errors"
	"theark/internal/uuid"
)

const (
	// CookieName is the cookie that carries the session token.
	CookieName = "theark_session"
	// TTL is the lifetime of every issued token.
	TTL    = 7 * 24 * time.Hour
	issuer = "theark"
)

// Claims represents the claims in the session token.
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// Token is a freshly issued session token.
type Token struct {
	Value     string
	Login     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// MaxAge returns the cookie max-age in seconds.
func (t *Token) MaxAge() int {
	return int(TTL / time.Second)
}

// Credentials is the single configured account. When PasswordHash is set it
// is a bcrypt hash and Password is ignored.
type Credentials struct {
	Login        string
	Password     string
	PasswordHash string
}

// Denylist records revoked token ids until their natural expiry.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Authority authenticates the configured account and issues, verifies and
// revokes session tokens.
type Authority struct {
	secret   []byte
	creds    Credentials
	now      func() time.Time
	newID    func() string
	denylist Denylist
}

// Option configures an Authority.
type Option func(*Authority)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Authority) { a.now = now }
}

// WithDenylist enables server-side revocation on logout.
func WithDenylist(d Denylist) Option {
	return func(a *Authority) { a.denylist = d }
}

// NewAuthority creates an Authority. The secret must not be empty.
func NewAuthority(secret string, creds Credentials, opts ...Option) (*Authority, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	a := &Authority{
		secret: []byte(secret),
		creds:  creds,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Authenticate checks login and password against the configured account and
// issues a token on success. Empty input, a wrong login and a wrong password
// all fail with the same ErrInvalidCredentials.
func (a *Authority) Authenticate(login, password string) (*Token, error) {
	if login == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(a.creds.Login)) == 1
	passwordOK := a.passwordMatches(password)
	if !loginOK || !passwordOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	return a.Issue(login)
}

func (a *Authority) passwordMatches(password string) bool {
	if a.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.creds.PasswordHash), []byte(password)) == nil
	}
	if a.creds.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
}

// Issue signs a token for login, valid for TTL from now.
func (a *Authority) Issue(login string) (*Token, error) {
	issuedAt := a.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(TTL)
	id := a.newID()

	claims := &Claims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			Subject:   login,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &Token{
		Value:     value,
		Login:     login,
		ID:        id,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks the token signature and expiry and returns its claims.
// A missing, malformed, forged or revoked token fails with ErrInvalidToken;
// a token at or past its expiry fails with ErrTokenExpired.
func (a *Authority) Verify(ctx context.Context, token string) (*Claims, error) {
	claims, err := a.parse(token)
	if err != nil {
		return nil, err
	}

	if a.denylist != nil {
		revoked, err := a.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if revoked {
			return nil, apperrors.ErrInvalidToken
		}
	}
	return claims, nil
}

// Revoke denies token until it expires. Without a denylist, or for a token
// that is already invalid, it does nothing.
func (a *Authority) Revoke(ctx context.Context, token string) error {
	if a.denylist == nil {
		return nil
	}
	claims, err := a.parse(token)
	if err != nil {
		return nil
	}
	return a.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// RevocationEnabled reports whether logout invalidates tokens server-side.
func (a *Authority) RevocationEnabled() bool {
	return a.denylist != nil
}

func (a *Authority) parse(token string) (*Claims, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Wrap(apperrors.ErrTokenExpired, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}
	if claims.Login == "" || claims.ID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

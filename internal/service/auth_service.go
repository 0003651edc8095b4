package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/session"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/user"
)

const recoveryTokenTTL = 15 * time.Minute

var (
	// ErrInvalidCredentials is returned when the email/password pair does
	// not match a user. It never distinguishes unknown email from wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when no valid session backs a request.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// SessionToken is a freshly issued opaque session token and its expiry.
// Token is the raw value handed to the client; only its hash is stored.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService handles signup, login, session resolution, and password
// recovery. Password hashes use bcrypt; session and recovery tokens are
// 32 random bytes stored sha256-hashed.
type AuthService struct {
	users      user.IUserTable
	sessions   session.ISessionTable
	bcryptCost int
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users user.IUserTable, sessions session.ISessionTable, bcryptCost int, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
	}
}

// Signup registers a new user. A duplicate email surfaces as pgdb.ErrConflict.
func (s *AuthService) Signup(ctx context.Context, email, password string) (uuid.UUID, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return uuid.Nil, err
	}
	return s.users.Insert(ctx, email, string(passwordHash))
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*SessionToken, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgdb.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.sessionTTL)
	if err := s.sessions.Insert(ctx, HashToken(token), u.ID, expiresAt); err != nil {
		return nil, err
	}

	return &SessionToken{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout deletes the session behind the token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteByTokenHash(ctx, HashToken(token))
}

// Resolve returns the owner identity behind a session token. Expired
// sessions are deleted and rejected; sessions in the last third of their
// lifetime are extended.
func (s *AuthService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	tokenHash := HashToken(token)

	sess, err := s.sessions.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, pgdb.ErrNotFound) {
			return uuid.Nil, ErrUnauthenticated
		}
		return uuid.Nil, err
	}

	now := time.Now().UTC()
	if !sess.ExpiresAt.After(now) {
		_ = s.sessions.DeleteByTokenHash(ctx, tokenHash)
		return uuid.Nil, ErrUnauthenticated
	}

	if sess.ExpiresAt.Sub(now) < s.sessionTTL/3 {
		if err := s.sessions.UpdateExpiry(ctx, tokenHash, now.Add(s.sessionTTL)); err != nil {
			return uuid.Nil, err
		}
	}

	return sess.UserID, nil
}

// Recover issues a one-time password recovery token for the email's user.
// Unknown emails return an empty token and no error so callers cannot be
// used to enumerate accounts.
func (s *AuthService) Recover(ctx context.Context, email string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgdb.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().UTC().Add(recoveryTokenTTL)
	if err := s.users.InsertRecoveryToken(ctx, u.ID, HashToken(token), expiresAt); err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword consumes a recovery token, replaces the password hash, and
// revokes the user's existing sessions.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.users.ConsumeRecoveryToken(ctx, HashToken(token), time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgdb.ErrNotFound) {
			return ErrUnauthenticated
		}
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, string(passwordHash)); err != nil {
		return err
	}

	return s.sessions.DeleteByUserID(ctx, userID)
}

// HashToken returns the hex sha256 of a raw token, the at-rest form of
// every session and recovery token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

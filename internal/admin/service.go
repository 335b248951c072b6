// Package admin authenticates the organiser and issues admin bearer tokens.
package admin

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strconv"
	"strings"
	"time"

	dErrors "onutec/pkg/domain-errors"
	"onutec/pkg/platform/audit"
	"onutec/pkg/requestcontext"
	"onutec/pkg/secrets"
)

// TokenIssuer signs admin tokens.
type TokenIssuer interface {
	GenerateAdminToken(subject string, expiresIn time.Duration) (string, time.Time, error)
}

// AuditPublisher records login attempts.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Credentials are the single organiser account. PasswordHash wins over
// Password; Password exists for local development only.
type Credentials struct {
	Username     string
	PasswordHash string
	Password     string
}

// Service checks credentials and issues tokens.
type Service struct {
	creds    Credentials
	tokens   TokenIssuer
	tokenTTL time.Duration
	audit    AuditPublisher
	lockout  *Lockout
	logger   *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.audit = p }
}

// WithLockout refuses repeated failures from one username and IP.
func WithLockout(l *Lockout) Option {
	return func(s *Service) { s.lockout = l }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates the login service.
func NewService(creds Credentials, tokens TokenIssuer, tokenTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		creds:    creds,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies username and password and returns a signed token.
// Every failure is reported as the same CodeUnauthorized error.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "username and password are required")
	}

	ip := requestcontext.ClientIP(ctx)
	if s.lockout != nil {
		if locked, until := s.lockout.Locked(username, ip); locked {
			s.record(ctx, audit.EventAdminLoginFailed, username, "locked out")
			retry := max(int(time.Until(until).Seconds()), 1)
			return nil, dErrors.New(dErrors.CodeRateLimited,
				"too many failed attempts, retry in "+strconv.Itoa(retry)+"s")
		}
	}

	if err := s.verify(username, password); err != nil {
		if s.lockout != nil && dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.lockout.RecordFailure(username, ip)
		}
		s.record(ctx, audit.EventAdminLoginFailed, username, "invalid credentials")
		s.logger.WarnContext(ctx, "admin login rejected",
			"username", username,
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", ip,
		)
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateAdminToken(username, s.tokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	if s.lockout != nil {
		s.lockout.Clear(username, ip)
	}
	s.record(ctx, audit.EventAdminLogin, username, "")
	s.logger.InfoContext(ctx, "admin logged in",
		"username", username,
		"request_id", requestcontext.RequestID(ctx),
	)

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) verify(username, password string) error {
	invalid := dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1

	switch {
	case s.creds.PasswordHash != "":
		if err := secrets.Verify(password, s.creds.PasswordHash); err != nil {
			if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
				return invalid
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify credentials")
		}
	case s.creds.Password != "":
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) != 1 {
			return invalid
		}
	default:
		return invalid
	}
	if !userOK {
		return invalid
	}
	return nil
}

// record writes a security audit event. Login is not transactional, so a
// sink failure is logged and does not change the response.
func (s *Service) record(ctx context.Context, action audit.AuditEvent, subject, reason string) {
	if s.audit == nil {
		return
	}
	err := s.audit.Emit(ctx, audit.Event{
		Action:  string(action),
		Subject: subject,
		Actor:   subject,
		Reason:  reason,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record login audit event",
			"action", action,
			"error", err,
		)
	}
}

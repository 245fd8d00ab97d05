package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"allocate/internal/domain"
)

type authService struct {
	adminRepo      domain.AdminRepository
	hasher         domain.PasswordHasher
	tokens         domain.TokenIssuer
	mailer         domain.Mailer
	templates      domain.EmailTemplateRenderer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAuthService creates the admin signup/login workflow. mailer and
// templates may be nil, in which case no welcome email is attempted.
func NewAuthService(
	adminRepo domain.AdminRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
	mailer domain.Mailer,
	templates domain.EmailTemplateRenderer,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		adminRepo:      adminRepo,
		hasher:         hasher,
		tokens:         tokens,
		mailer:         mailer,
		templates:      templates,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// SignUp creates a new admin identity. Exactly one record is written on
// success and none on any failure path. A duplicate email, whether caught by
// the existence check or by the store's unique index under a concurrent
// signup, is domain.ErrAdminExists.
func (s *authService) SignUp(ctx context.Context, firstName, lastName, email, password string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))

	_, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrAdminExists
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	admin := domain.NewAdmin(strings.TrimSpace(firstName), strings.TrimSpace(lastName), email, hash, now, now)
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.sendWelcomeEmail(ctx, admin)
	return admin, nil
}

// sendWelcomeEmail is best effort: a mail failure is logged and never fails
// the signup.
func (s *authService) sendWelcomeEmail(ctx context.Context, admin *domain.Admin) {
	if s.mailer == nil || s.templates == nil {
		return
	}
	subject, html, text, err := s.templates.Render("welcome", domain.WelcomeEmailData{
		FirstName: admin.FirstName,
		Email:     admin.Email,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "render welcome email failed", "err", err)
		return
	}
	if err := s.mailer.Send(admin.Email, subject, html, text); err != nil {
		s.logger.WarnContext(ctx, "send welcome email failed", "email", admin.Email, "err", err)
	}
}

// Login verifies credentials and issues a bearer token. An unknown email and
// a wrong password both return domain.ErrInvalidCredentials so callers cannot
// enumerate accounts. Login never mutates state.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.Admin, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	admin, err := s.adminRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup admin: %w", err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, "", domain.ErrInvalidCredentials
		}
		// Malformed stored hash is an internal fault, not a credential
		// mismatch.
		return nil, "", fmt.Errorf("verify password: %w", err)
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return admin, token, nil
}

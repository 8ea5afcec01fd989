package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RayBDev/devconnector/internal/auth"
	"github.com/RayBDev/devconnector/internal/email"
	"github.com/RayBDev/devconnector/internal/models"
	"github.com/RayBDev/devconnector/internal/repo"
	"github.com/RayBDev/devconnector/internal/utils"
	"github.com/RayBDev/devconnector/internal/validation"
)

const mailDispatchTimeout = 15 * time.Second

// UserStore is the credential store surface the auth flows need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type AuthService struct {
	users   UserStore
	tokens  *auth.TokenIssuer
	mailer  email.Mailer
	logger  *slog.Logger
	baseURL string
}

type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func NewAuthService(users UserStore, tokens *auth.TokenIssuer, mailer email.Mailer, logger *slog.Logger, baseURL string) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer, logger: logger, baseURL: baseURL}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, password2 string) (*models.User, error) {
	if errs := validation.Register(name, email, password, password2); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, utils.NewSingleFieldError(http.StatusBadRequest, "email", "Email already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Avatar:       utils.GravatarURL(email),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The lookup above races with concurrent registrations; the
		// unique index is the authority.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.NewSingleFieldError(http.StatusBadRequest, "email", "Email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	if errs := validation.Login(emailAddr, password); !errs.Valid() {
		return nil, utils.NewFieldError(http.StatusBadRequest, errs)
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewSingleFieldError(http.StatusNotFound, "email", "User not found")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, utils.NewSingleFieldError(http.StatusBadRequest, "password", "Password incorrect")
	}

	token, err := s.tokens.IssueSession(user.ID, user.Name, user.Avatar)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &LoginResult{Success: true, Token: "Bearer " + token}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

// ForgotPassword always reports success for a well-formed email, whether
// or not an account exists. The response shape must not reveal which
// emails are registered, so the reset email is dispatched only on the
// found branch, detached from the request: a slow or failing gateway
// never delays or changes the already-committed response.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	if errs := validation.Email(emailAddr); !errs.Valid() {
		return utils.NewFieldError(http.StatusBadRequest, errs)
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	token, err := s.tokens.IssueReset(user.ID)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}
	resetURL := fmt.Sprintf("%s/resetpw/%s", s.baseURL, token)

	dispatchCtx := context.WithoutCancel(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(dispatchCtx, mailDispatchTimeout)
		defer cancel()
		if err := s.mailer.SendPasswordReset(sendCtx, user.Name, user.Email, resetURL); err != nil {
			s.logger.Error("password reset email delivery failed", "user_id", user.ID, "error", err)
		}
	}()

	return nil
}

// ResetPassword overwrites the stored hash for the token subject. The
// token itself stays valid until expiry, so a replay before then
// overwrites again.
func (s *AuthService) ResetPassword(ctx context.Context, userID, password, password2 string) error {
	if errs := validation.NewPassword(password, password2); !errs.Valid() {
		return utils.NewFieldError(http.StatusBadRequest, errs)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NewAppError(http.StatusBadRequest, "RESET_FAILED", "could not update password")
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

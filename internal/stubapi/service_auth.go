// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The role defaults to ship agent.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrEmailAlreadyExists if the email is taken.
func (b *Backend) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), b.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleShipAgent
	}

	now := b.timestamp()
	user := models.User{
		ID:        b.ids.Generate(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Role:      role,
		Company:   req.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = b.accounts.createAccount(ctx, account{user: user, passwordHash: hash}); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			log.Error().Str("email", email).Msg("email already exists")
		}
		return models.User{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks credentials and returns the account.
func (b *Backend) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	acc, err := b.accounts.accountByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		log.Error().Str("email", email).Msg("no user was found")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if err = bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)); err != nil {
		log.Error().Str("user_id", acc.user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return acc.user, nil
}

// CreateToken issues a signed session token for user.
func (b *Backend) CreateToken(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateJWTToken(b.tokenIssuer, user, b.tokenDuration, b.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken verifies tokenString. Any verification failure, including a
// token of a deleted user, is reported as ErrTokenIsExpiredOrInvalid. Errors
// of the account store are returned as is.
func (b *Backend) ParseToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, b.tokenSignKey, b.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return nil, ErrTokenIsExpiredOrInvalid
	}

	if _, err = b.accounts.accountByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTokenIsExpiredOrInvalid
		}
		return nil, err
	}

	return claims, nil
}

// ForgotPassword issues a one-time reset token for email. An unknown email
// yields an empty token and no error so callers cannot probe accounts.
func (b *Backend) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", ErrInvalidDataProvided
	}

	acc, err := b.accounts.accountByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Info().Str("email", email).Msg("password reset requested for unknown email")
		return "", nil
	}
	if err != nil {
		return "", err
	}

	token := uuid.NewString()

	b.resetsMu.Lock()
	b.resets[utils.HashString(token, b.tokenSignKey)] = acc.user.ID
	b.resetsMu.Unlock()

	return token, nil
}

// ResetPassword consumes a reset token and sets a new password.
func (b *Backend) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	token := strings.TrimSpace(req.Token)
	if token == "" || req.Password == "" {
		return ErrInvalidDataProvided
	}

	key := utils.HashString(token, b.tokenSignKey)

	b.resetsMu.Lock()
	userID, ok := b.resets[key]
	delete(b.resets, key)
	b.resetsMu.Unlock()

	if !ok {
		return ErrResetTokenInvalid
	}

	if err := b.setPassword(ctx, userID, req.Password); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("password reset")
	return nil
}

// ChangePassword replaces the password of userID after checking the current
// one.
func (b *Backend) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrInvalidDataProvided
	}

	acc, err := b.accounts.accountByID(ctx, userID)
	if err != nil {
		return err
	}
	if err = bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.CurrentPassword)); err != nil {
		logger.FromContext(ctx).Error().Str("user_id", userID).Msg("wrong current password")
		return ErrWrongPassword
	}

	return b.setPassword(ctx, userID, req.NewPassword)
}

func (b *Backend) setPassword(ctx context.Context, userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	_, err = b.accounts.updateAccount(ctx, userID, func(acc *account) error {
		acc.passwordHash = hash
		acc.user.UpdatedAt = b.timestamp()
		return nil
	})
	return err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/session"
	"github.com/MKhiriev/go-port-ops/models"
)

type clientAuthService struct {
	api     adapter.API
	session *session.Session
}

func NewClientAuthService(api adapter.API, sess *session.Session) AuthService {
	return &clientAuthService{api: api, session: sess}
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	var resp models.AuthResponse
	if err := a.api.Do(ctx, http.MethodPost, a.api.Endpoints().Auth.Login, req, &resp); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	if err := a.begin(ctx, resp.Token); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	return resp.User, nil
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	var resp models.AuthResponse
	if err := a.api.Do(ctx, http.MethodPost, a.api.Endpoints().Auth.Register, req, &resp); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	if err := a.begin(ctx, resp.Token); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	return resp.User, nil
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyCredentials
	}

	var resp models.MessageResponse
	err := a.api.Do(ctx, http.MethodPost, a.api.Endpoints().Auth.ForgotPassword, models.ForgotPasswordRequest{Email: email}, &resp)
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}

	return resp.Message, nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	if strings.TrimSpace(req.Token) == "" || req.Password == "" {
		return "", ErrEmptyCredentials
	}

	var resp models.MessageResponse
	if err := a.api.Do(ctx, http.MethodPost, a.api.Endpoints().Auth.ResetPassword, req, &resp); err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}

	return resp.Message, nil
}

func (a *clientAuthService) RefreshToken(ctx context.Context) error {
	if a.session.Token(ctx) == "" {
		return ErrNotAuthenticated
	}

	var resp models.AuthResponse
	if err := a.api.Do(ctx, http.MethodPost, a.api.Endpoints().Auth.RefreshToken, nil, &resp); err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}

	if err := a.begin(ctx, resp.Token); err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}

	return nil
}

func (a *clientAuthService) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := a.api.Do(ctx, http.MethodGet, a.api.Endpoints().Auth.Me, nil, &user); err != nil {
		return models.User{}, fmt.Errorf("me: %w", err)
	}

	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.session.End(ctx)
}

func (a *clientAuthService) State(ctx context.Context) session.State {
	return a.session.State(ctx)
}

func (a *clientAuthService) begin(ctx context.Context, token string) error {
	err := a.session.Begin(ctx, token)
	if errors.Is(err, session.ErrEmptyToken) {
		return ErrNoTokenIssued
	}
	return err
}
